package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-social-kit/pkg/domain"
)

// Builder は、SourceRow とモードからAIへの自然言語指示を組み立てます。
// 対応表はプロセス全体で不変の定数なので、Builder自体は状態を持ちません。
type Builder struct {
	mode domain.Mode
}

// NewBuilder は指定モード用の Builder を生成します。
func NewBuilder(mode domain.Mode) *Builder {
	return &Builder{mode: mode}
}

// Build は1件分の指示文字列を決定論的に組み立てる純関数です。
// logoAttached は、ロゴ画像の取得に成功しインライン添付される場合にのみ true を渡します。
func (b *Builder) Build(row domain.SourceRow, logoAttached bool) string {
	if b.mode == domain.ModeSingle {
		return b.buildSingle(row)
	}
	return b.buildBatch(row, logoAttached)
}

// buildSingle は単発プロンプトモードの指示を組み立てます。
// 無関係トピックにはJSONの代わりにセンチネルを返すようモデルへ指示します。
func (b *Builder) buildSingle(row domain.SourceRow) string {
	profession := orDefault(row.BrandName, DefaultProfession)
	topic := orDefault(row.Topic(), DefaultTopic)

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are a professional content creator for %s.\n\n", profession)
	sb.WriteString("IMPORTANT REQUIREMENTS:\n")
	fmt.Fprintf(&sb, "1. Create social media content ONLY about: %s\n", topic)
	fmt.Fprintf(&sb, "2. The content MUST be relevant to both the profession %q and the topic %q\n", profession, topic)
	sb.WriteString("3. You MUST generate a high-quality image that represents this content\n")
	sb.WriteString("4. Include text overlay on the image that's suitable for social media\n\n")

	fmt.Fprintf(&sb, "If the prompt is not relevant to social media content creation or the profession, respond with: %q\n\n", domain.IrrelevantSentinel)

	sb.WriteString("Otherwise, format your response EXACTLY as this JSON structure (no additional text before or after):\n")
	b.writeJSONShape(&sb, profession, topic)

	sb.WriteString("Rules:\n")
	fmt.Fprintf(&sb, "- Provide exactly %d titles\n", b.mode.TitleCount())
	sb.WriteString("- Provide exactly 1 description (2-3 sentences)\n")
	fmt.Fprintf(&sb, "- Provide exactly %d hashtags with # symbol\n", b.mode.HashtagCount())
	fmt.Fprintf(&sb, "- All content must be relevant to %s and %s\n", profession, topic)
	sb.WriteString("- Generate a professional social media image with text overlay\n")

	return sb.String()
}

// buildBatch は一括モードの指示を組み立てます。
// プラットフォーム・投稿種別・フォントの各対応表からヒントを選び、
// ロゴと連絡先の指示は該当フィールドが存在する場合のみ追記します。
func (b *Builder) buildBatch(row domain.SourceRow, logoAttached bool) string {
	profession := orDefault(row.BrandName, DefaultProfession)
	topic := orDefault(row.Topic(), DefaultTopic)
	platformType := orDefault(row.PlatformType, DefaultPlatform)
	postType := orDefault(row.TypeOfPost, DefaultPostType)
	fontStyle := orDefault(row.FontStyle, DefaultFontStyle)

	imageStyle := ImageStyleFor(platformType)
	postTypeStyle := PostTypeStyleFor(postType)
	fontChars := FontCharacteristicsFor(fontStyle)

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are a professional content creator for %s.\n\n", profession)
	sb.WriteString("IMPORTANT REQUIREMENTS:\n")
	fmt.Fprintf(&sb, "1. Create %s content about: %s\n", platformType, topic)
	fmt.Fprintf(&sb, "2. The content MUST be relevant to the brand %q\n", profession)
	fmt.Fprintf(&sb, "3. Use font style that matches: %s\n\n", fontStyle)

	sb.WriteString("IMAGE GENERATION REQUIREMENTS (EXTREMELY IMPORTANT):\n")
	fmt.Fprintf(&sb, "1. Generate a HIGH-QUALITY %s image that PERFECTLY represents the content\n", imageStyle)
	sb.WriteString("2. The image MUST include these elements:\n")
	fmt.Fprintf(&sb, "   - Visual representation of the main subject: %q\n", topic)
	fmt.Fprintf(&sb, "   - Brand name %q should be visible if appropriate\n", profession)
	fmt.Fprintf(&sb, "   - Color scheme and mood should match the %s content type: %s\n", postType, postTypeStyle)
	fmt.Fprintf(&sb, "   - Use %s for any text elements\n", fontChars)
	sb.WriteString("3. Text overlay requirements:\n")
	sb.WriteString("   - Include a SHORT, IMPACTFUL headline (5 words max)\n")
	sb.WriteString("   - Text must be HIGHLY READABLE against the background (good contrast)\n")
	sb.WriteString("   - Position text in the most visually effective area (rule of thirds)\n")
	fmt.Fprintf(&sb, "   - Text size should be appropriate for %s viewing\n", platformType)
	sb.WriteString("4. The image should convey the main message even without reading the description\n")
	sb.WriteString("5. Visual style should be cohesive with both the brand identity and content topic\n")

	if logoAttached {
		sb.WriteString("\nLOGO PLACEMENT REQUIREMENTS (STRICT):\n")
		sb.WriteString("- The attached image is the official brand logo. Embed EXACTLY ONE copy of it\n")
		sb.WriteString("- Place the logo in a corner of the image, small but clearly recognizable\n")
		sb.WriteString("- Do NOT redraw, distort, recolor, or duplicate the logo anywhere else\n")
	}

	if row.HasContact() {
		sb.WriteString("\nCONTACT INFORMATION REQUIREMENTS:\n")
		if row.PhoneNumber != "" {
			fmt.Fprintf(&sb, "- Render the phone number %q into the image\n", row.PhoneNumber)
		}
		if row.EmailID != "" {
			fmt.Fprintf(&sb, "- Render the email address %q into the image\n", row.EmailID)
		}
		fmt.Fprintf(&sb, "- Position the contact details where %s posts typically carry them, without crowding the headline\n", platformType)
	}

	sb.WriteString("\nFormat your response EXACTLY as this JSON structure (no additional text before or after):\n")
	b.writeJSONShape(&sb, profession, topic)

	sb.WriteString("Rules:\n")
	fmt.Fprintf(&sb, "- Provide exactly %d titles\n", b.mode.TitleCount())
	sb.WriteString("- Provide exactly 1 description (2-3 sentences)\n")
	fmt.Fprintf(&sb, "- Provide exactly %d hashtags with # symbol\n", b.mode.HashtagCount())
	fmt.Fprintf(&sb, "- All content must be relevant to %s and %s\n", profession, topic)
	fmt.Fprintf(&sb, "- Generate a professional %s image that FULLY incorporates all the image requirements above\n", platformType)

	return sb.String()
}

// writeJSONShape は、モード固有の件数で要求するJSON構造の見本を書き出します。
func (b *Builder) writeJSONShape(sb *strings.Builder, profession, topic string) {
	titles := make([]string, b.mode.TitleCount())
	for i := range titles {
		titles[i] = fmt.Sprintf("%q", fmt.Sprintf("Title %d", i+1))
	}
	hashtags := make([]string, b.mode.HashtagCount())
	for i := range hashtags {
		hashtags[i] = fmt.Sprintf("%q", fmt.Sprintf("#tag%d", i+1))
	}

	sb.WriteString("{\n")
	fmt.Fprintf(sb, "  \"titles\": [%s],\n", strings.Join(titles, ", "))
	fmt.Fprintf(sb, "  \"description\": \"A compelling description that relates to %s and %s\",\n", profession, topic)
	fmt.Fprintf(sb, "  \"hashtags\": [%s]\n", strings.Join(hashtags, ", "))
	sb.WriteString("}\n\n")
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
