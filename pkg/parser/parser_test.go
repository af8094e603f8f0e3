package parser

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/shouni/go-social-kit/pkg/domain"
)

func textResponse(text string) *domain.GenerationResponse {
	return &domain.GenerationResponse{Parts: []domain.ResponsePart{{Text: text}}}
}

func multimodalResponse(text string, imageData []byte) *domain.GenerationResponse {
	return &domain.GenerationResponse{Parts: []domain.ResponsePart{
		{Text: text},
		{MIMEType: "image/png", Data: imageData},
	}}
}

const validBatchJSON = `{
	"titles": ["Morning Brew", "Latte Season", "Cafe Luna News"],
	"description": "Our seasonal latte is here.",
	"hashtags": ["#latte", "#cafeluna", "#autumn", "#coffee", "#seasonal"]
}`

func TestParse_ValidJSON(t *testing.T) {
	t.Run("整形済みJSONはそのまま往復するのだ", func(t *testing.T) {
		p := New(domain.ModeBatch)
		got, err := p.Parse(multimodalResponse(validBatchJSON, []byte("png")))
		if err != nil {
			t.Fatalf("Parse失敗: %v", err)
		}

		wantTitles := []string{"Morning Brew", "Latte Season", "Cafe Luna News"}
		if !reflect.DeepEqual(got.Titles, wantTitles) {
			t.Errorf("Titles = %v, want %v", got.Titles, wantTitles)
		}
		if got.Description != "Our seasonal latte is here." {
			t.Errorf("Description = %q", got.Description)
		}
		if len(got.Hashtags) != 5 {
			t.Errorf("Hashtags = %v", got.Hashtags)
		}
		if got.ImageURL == "" {
			t.Error("画像パートがdata URIに変換されていない")
		}
	})

	t.Run("モード上限を超える要素は切り詰めるのだ", func(t *testing.T) {
		p := New(domain.ModeBatch)
		oversized := `{"titles": ["a","b","c","d","e"], "description": "d", "hashtags": ["#1","#2","#3","#4","#5","#6","#7"]}`
		got, err := p.Parse(multimodalResponse(oversized, []byte("png")))
		if err != nil {
			t.Fatalf("Parse失敗: %v", err)
		}
		if len(got.Titles) != 3 || len(got.Hashtags) != 5 {
			t.Errorf("切り詰めが効いていない: titles=%d hashtags=%d", len(got.Titles), len(got.Hashtags))
		}
	})
}

func TestParse_FencedJSONWithProse(t *testing.T) {
	p := New(domain.ModeBatch)
	wrapped := fmt.Sprintf("Sure! Here is your content:\n```json\n%s\n```\nLet me know if you need more.", validBatchJSON)

	got, err := p.Parse(multimodalResponse(wrapped, []byte("png")))
	if err != nil {
		t.Fatalf("Parse失敗: %v", err)
	}
	if got.Titles[0] != "Morning Brew" {
		t.Errorf("フェンス付き応答から抽出できていない: %v", got.Titles)
	}
	if got.Description != "Our seasonal latte is here." {
		t.Errorf("Description = %q", got.Description)
	}
}

func TestParse_RegexSalvage(t *testing.T) {
	t.Run("壊れたJSONでも認識可能な断片から復元するのだ", func(t *testing.T) {
		p := New(domain.ModeBatch)
		// 末尾の閉じ括弧が欠けた壊れたJSON。
		broken := `{
			"titles": ["Morning Brew", "Latte Season", "Cafe Luna News"],
			"description": "Our seasonal latte is here.",
			"hashtags": ["#latte", "cafeluna", "#autumn", "#coffee", "#seasonal"],`

		got, err := p.Parse(multimodalResponse(broken, []byte("png")))
		if err != nil {
			t.Fatalf("Parse失敗: %v", err)
		}

		wantTitles := []string{"Morning Brew", "Latte Season", "Cafe Luna News"}
		if !reflect.DeepEqual(got.Titles, wantTitles) {
			t.Errorf("Titles = %v, want %v", got.Titles, wantTitles)
		}
		if got.Description != "Our seasonal latte is here." {
			t.Errorf("Description = %q", got.Description)
		}
		if got.Hashtags[1] != "#cafeluna" {
			t.Errorf("サルベージでも#正規化されるべき: %v", got.Hashtags)
		}
	})

	t.Run("サルベージ結果は正JSONの直接パースと一致するのだ", func(t *testing.T) {
		direct, err := New(domain.ModeBatch).Parse(multimodalResponse(validBatchJSON, []byte("png")))
		if err != nil {
			t.Fatalf("直接パース失敗: %v", err)
		}

		// 同じ内容だが前置プロースで壊れている（最初の { の前に { を含むゴミ）。
		damaged := "broken{oops\n" + validBatchJSON[1:]
		salvaged, err := New(domain.ModeBatch).Parse(multimodalResponse(damaged, []byte("png")))
		if err != nil {
			t.Fatalf("サルベージパース失敗: %v", err)
		}

		if !reflect.DeepEqual(direct.Titles, salvaged.Titles) {
			t.Errorf("titles不一致: %v vs %v", direct.Titles, salvaged.Titles)
		}
		if direct.Description != salvaged.Description {
			t.Errorf("description不一致: %q vs %q", direct.Description, salvaged.Description)
		}
		if !reflect.DeepEqual(direct.Hashtags, salvaged.Hashtags) {
			t.Errorf("hashtags不一致: %v vs %v", direct.Hashtags, salvaged.Hashtags)
		}
	})
}

func TestParse_HashtagNormalization(t *testing.T) {
	p := New(domain.ModeBatch)
	payload := `{"titles": ["t"], "description": "d", "hashtags": ["coffee", "#latte"]}`

	got, err := p.Parse(multimodalResponse(payload, []byte("png")))
	if err != nil {
		t.Fatalf("Parse失敗: %v", err)
	}
	want := []string{"#coffee", "#latte"}
	if !reflect.DeepEqual(got.Hashtags, want) {
		t.Errorf("Hashtags = %v, want %v (#は重ねて付けない)", got.Hashtags, want)
	}
}

func TestParse_MissingImage(t *testing.T) {
	t.Run("一括モードは画像なしでも非nilレコードなのだ", func(t *testing.T) {
		got, err := New(domain.ModeBatch).Parse(textResponse(validBatchJSON))
		if err != nil {
			t.Fatalf("Parse失敗: %v", err)
		}
		if got.ImageURL != "" {
			t.Errorf("ImageURL = %q, want empty", got.ImageURL)
		}
	})

	t.Run("単発モードは画像欠落が致命的エラーなのだ", func(t *testing.T) {
		_, err := New(domain.ModeSingle).Parse(textResponse(validBatchJSON))
		if !errors.Is(err, domain.ErrMissingImage) {
			t.Errorf("err = %v, want ErrMissingImage", err)
		}
	})
}

func TestParse_IrrelevantSentinel(t *testing.T) {
	_, err := New(domain.ModeSingle).Parse(multimodalResponse("IRRELEVANT_CONTENT", []byte("png")))
	if !errors.Is(err, domain.ErrIrrelevantContent) {
		t.Errorf("err = %v, want ErrIrrelevantContent", err)
	}

	// 一括モードはセンチネルを特別扱いしない。
	got, err := New(domain.ModeBatch).Parse(multimodalResponse("IRRELEVANT_CONTENT", []byte("png")))
	if err != nil {
		t.Fatalf("一括モードでエラーになった: %v", err)
	}
	if got.Titles[0] != domain.PlaceholderTitle {
		t.Errorf("プレースホルダーになっていない: %v", got.Titles)
	}
}

func TestParse_RecoveryExhausted(t *testing.T) {
	garbage := "The model replied with nothing useful at all."

	t.Run("一括モードはプレースホルダーで埋めるのだ", func(t *testing.T) {
		got, err := New(domain.ModeBatch).Parse(multimodalResponse(garbage, []byte("png")))
		if err != nil {
			t.Fatalf("Parse失敗: %v", err)
		}
		if got.Titles[0] != domain.PlaceholderTitle {
			t.Errorf("Titles = %v", got.Titles)
		}
		if got.Description != domain.PlaceholderDescription {
			t.Errorf("Description = %q", got.Description)
		}
		if got.Hashtags[0] != domain.PlaceholderHashtag {
			t.Errorf("Hashtags = %v", got.Hashtags)
		}
	})

	t.Run("単発モードは終端エラーなのだ", func(t *testing.T) {
		_, err := New(domain.ModeSingle).Parse(multimodalResponse(garbage, []byte("png")))
		if !errors.Is(err, domain.ErrParseExhausted) {
			t.Errorf("err = %v, want ErrParseExhausted", err)
		}
	})
}

func TestParse_LegacySections(t *testing.T) {
	legacy := `Titles:
1. Morning Brew
2. Latte Season
- Cafe Luna News

Description: Our seasonal latte is here.

Hashtags: #latte cafeluna #autumn`

	got, err := New(domain.ModeBatch).Parse(multimodalResponse(legacy, []byte("png")))
	if err != nil {
		t.Fatalf("Parse失敗: %v", err)
	}

	wantTitles := []string{"Morning Brew", "Latte Season", "Cafe Luna News"}
	if !reflect.DeepEqual(got.Titles, wantTitles) {
		t.Errorf("Titles = %v, want %v", got.Titles, wantTitles)
	}
	if got.Description != "Our seasonal latte is here." {
		t.Errorf("Description = %q", got.Description)
	}
	want := []string{"#latte", "#cafeluna", "#autumn"}
	if !reflect.DeepEqual(got.Hashtags, want) {
		t.Errorf("Hashtags = %v, want %v", got.Hashtags, want)
	}
}

func TestExtractImageURL_LastPartWins(t *testing.T) {
	resp := &domain.GenerationResponse{Parts: []domain.ResponsePart{
		{MIMEType: "image/png", Data: []byte("first")},
		{Text: "{}"},
		{MIMEType: "image/jpeg", Data: []byte("second")},
		{MIMEType: "application/json", Data: []byte("not-an-image")},
	}}

	got := extractImageURL(resp)
	want := domain.BuildDataURI("image/jpeg", []byte("second"))
	if got != want {
		t.Errorf("extractImageURL = %q, want %q", got, want)
	}
}
