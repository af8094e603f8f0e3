package prompts

import (
	"strings"
	"testing"

	"github.com/shouni/go-social-kit/pkg/domain"
)

func TestBuilder_Single(t *testing.T) {
	b := NewBuilder(domain.ModeSingle)

	t.Run("職業とトピックが展開されるのだ", func(t *testing.T) {
		got := b.Build(domain.SourceRow{BrandName: "Photographer", Prompt: "autumn portraits"}, false)

		for _, want := range []string{
			"professional content creator for Photographer",
			"ONLY about: autumn portraits",
			domain.IrrelevantSentinel,
			"- Provide exactly 10 titles",
			"- Provide exactly 10 hashtags with # symbol",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("プロンプトに %q が含まれていない", want)
			}
		}
	})

	t.Run("欠落フィールドは汎用デフォルトで埋めるのだ", func(t *testing.T) {
		got := b.Build(domain.SourceRow{}, false)
		if !strings.Contains(got, DefaultProfession) {
			t.Errorf("デフォルト職業 %q が使われていない", DefaultProfession)
		}
		if !strings.Contains(got, DefaultTopic) {
			t.Errorf("デフォルトトピック %q が使われていない", DefaultTopic)
		}
	})

	t.Run("単発モードにはロゴ指示が入らないのだ", func(t *testing.T) {
		got := b.Build(domain.SourceRow{BrandName: "Chef"}, true)
		if strings.Contains(got, "LOGO PLACEMENT") {
			t.Error("単発モードにロゴ指示が混入している")
		}
	})
}

func TestBuilder_Batch(t *testing.T) {
	b := NewBuilder(domain.ModeBatch)

	row := domain.SourceRow{
		BrandName:    "Cafe Luna",
		Content:      "seasonal latte launch",
		PlatformType: "Instagram",
		TypeOfPost:   "Promotional",
		FontStyle:    "Elegant",
	}

	t.Run("3つの対応表すべてからヒントを選ぶのだ", func(t *testing.T) {
		got := b.Build(row, false)

		for _, want := range []string{
			ImageStyleFor("instagram"),
			PostTypeStyleFor("promotional"),
			FontCharacteristicsFor("elegant"),
			"- Provide exactly 3 titles",
			"- Provide exactly 5 hashtags with # symbol",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("プロンプトに %q が含まれていない", want)
			}
		}
		if strings.Contains(got, domain.IrrelevantSentinel) {
			t.Error("一括モードにセンチネル指示が混入している")
		}
	})

	t.Run("欠落フィールドでもセクションは省略しないのだ", func(t *testing.T) {
		got := b.Build(domain.SourceRow{}, false)
		if !strings.Contains(got, DefaultImageStyle) {
			t.Error("プラットフォーム欠落時は汎用画像スタイルを明示すべき")
		}
		if !strings.Contains(got, FontCharacteristicsFor("professional")) {
			t.Error("フォント欠落時はprofessionalの文字表現を明示すべき")
		}
	})

	t.Run("ロゴ指示は添付成功時のみなのだ", func(t *testing.T) {
		withLogo := b.Build(row, true)
		withoutLogo := b.Build(row, false)

		if !strings.Contains(withLogo, "EXACTLY ONE copy") {
			t.Error("ロゴ添付時の厳格な配置指示が欠けている")
		}
		if strings.Contains(withoutLogo, "LOGO PLACEMENT") {
			t.Error("ロゴ未添付なのにロゴ指示が出力されている")
		}
	})

	t.Run("連絡先指示は該当フィールドがある場合のみなのだ", func(t *testing.T) {
		contact := row
		contact.PhoneNumber = "090-0000-0000"
		contact.EmailID = "hello@cafeluna.example"

		got := b.Build(contact, false)
		if !strings.Contains(got, "090-0000-0000") || !strings.Contains(got, "hello@cafeluna.example") {
			t.Error("連絡先が画像指示に反映されていない")
		}
		if strings.Contains(b.Build(row, false), "CONTACT INFORMATION") {
			t.Error("連絡先なしの行に連絡先指示が出力されている")
		}
	})
}
