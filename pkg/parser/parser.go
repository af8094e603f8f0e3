package parser

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-social-kit/pkg/domain"
)

// Parser は生成エンドポイントの生応答を GeneratedContent へ変換します。
// 抽出は多段フォールバック（厳格JSON、正規表現サルベージ、セクション形式、
// プレースホルダー）で行い、部分的に未定義なレコードは決して返しません。
type Parser struct {
	mode domain.Mode
}

// New は指定モード用の Parser を生成します。
func New(mode domain.Mode) *Parser {
	return &Parser{mode: mode}
}

// Parse は応答を1件の GeneratedContent に変換します。
// 失敗ポリシーはモードに従います: 一括モードはプレースホルダーで埋めて必ずレコードを返し、
// 単発モードはセンチネル検出・画像欠落・抽出不能をエラーとして返します。
func (p *Parser) Parse(resp *domain.GenerationResponse) (*domain.GeneratedContent, error) {
	if resp == nil {
		return nil, fmt.Errorf("応答がnilです: %w", domain.ErrParseExhausted)
	}

	imageURL := extractImageURL(resp)
	text := resp.Text()

	// 無関係トピックの明示通知（単発モード限定）。それ以上のパースは行わない。
	if p.mode == domain.ModeSingle && strings.Contains(text, domain.IrrelevantSentinel) {
		return nil, domain.ErrIrrelevantContent
	}

	if imageURL == "" && p.mode.RequiresImage() {
		return nil, domain.ErrMissingImage
	}

	titles, description, hashtags, jsonErr := p.parseJSON(text)
	if jsonErr != nil {
		slog.Debug("厳格JSONパースに失敗。正規表現サルベージへ移行", "error", jsonErr)
		titles, description, hashtags = p.salvage(text)
	}

	// レガシー形式（"Titles:" 等のラベル付きプレーンテキスト）の最終サルベージ。
	// まだ空のフィールドグループに限って適用する。
	if len(titles) == 0 || description == "" || len(hashtags) == 0 {
		st, sd, sh := p.salvageSections(text)
		if len(titles) == 0 {
			titles = st
		}
		if description == "" {
			description = sd
		}
		if len(hashtags) == 0 {
			hashtags = sh
		}
	}

	if p.mode.FailsOnEmptyContent() && (len(titles) == 0 || description == "" || len(hashtags) == 0) {
		return nil, domain.ErrParseExhausted
	}

	return &domain.GeneratedContent{
		Titles:      fillTitles(titles),
		Description: fillDescription(description),
		Hashtags:    fillHashtags(hashtags),
		ImageURL:    imageURL,
	}, nil
}

// parseJSON はフェンス記号を除去し、最初の `{` から最後の `}` までを切り出して
// 厳格にJSONとしてパースします。欠落または型不一致のフィールドは空のまま返します。
func (p *Parser) parseJSON(text string) ([]string, string, []string, error) {
	jsonText := fencedMarkerRegex.ReplaceAllString(text, "")

	start := strings.Index(jsonText, "{")
	end := strings.LastIndex(jsonText, "}")
	if start != -1 && end != -1 && end > start {
		jsonText = jsonText[start : end+1]
	}

	var payload struct {
		Titles      []string `json:"titles"`
		Description string   `json:"description"`
		Hashtags    []string `json:"hashtags"`
	}
	if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
		return nil, "", nil, err
	}

	titles := capStrings(payload.Titles, p.mode.TitleCount())
	hashtags := normalizeHashtags(payload.Hashtags, p.mode.HashtagCount())
	return titles, payload.Description, hashtags, nil
}

// salvage はJSONパース失敗時の二次抽出です。各フィールドを独立に正規表現で拾います。
func (p *Parser) salvage(text string) ([]string, string, []string) {
	var titles, hashtags []string
	var description string

	if m := titlesArrayRegex.FindStringSubmatch(text); m != nil {
		titles = capStrings(extractQuoted(m[1]), p.mode.TitleCount())
	}
	if m := descriptionRegex.FindStringSubmatch(text); m != nil {
		description = m[1]
	}
	if m := hashtagsArrayRegex.FindStringSubmatch(text); m != nil {
		hashtags = normalizeHashtags(extractQuoted(m[1]), p.mode.HashtagCount())
	}

	return titles, description, hashtags
}

// extractImageURL は応答パートを走査し、MIMEタイプが image/ で始まるインライン
// ペイロードを data URI に組み立てます。複数あれば最後のものが採用されます。
func extractImageURL(resp *domain.GenerationResponse) string {
	imageURL := ""
	for _, part := range resp.Parts {
		if strings.HasPrefix(part.MIMEType, "image/") && len(part.Data) > 0 {
			imageURL = domain.BuildDataURI(part.MIMEType, part.Data)
		}
	}
	return imageURL
}

func extractQuoted(inner string) []string {
	matches := quotedStringRegex.FindAllStringSubmatch(inner, -1)
	values := make([]string, 0, len(matches))
	for _, m := range matches {
		values = append(values, m[1])
	}
	return values
}

// normalizeHashtags は各タグの先頭に # をちょうど1つ保証し、モードの上限で切り詰めます。
// すでに # で始まるタグには重ねて付けません。
func normalizeHashtags(tags []string, limit int) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		normalized = append(normalized, tag)
	}
	return capStrings(normalized, limit)
}

func capStrings(values []string, limit int) []string {
	if len(values) > limit {
		return values[:limit]
	}
	return values
}

func fillTitles(titles []string) []string {
	if len(titles) == 0 {
		return []string{domain.PlaceholderTitle}
	}
	return titles
}

func fillDescription(description string) string {
	if description == "" {
		return domain.PlaceholderDescription
	}
	return description
}

func fillHashtags(hashtags []string) []string {
	if len(hashtags) == 0 {
		return []string{domain.PlaceholderHashtag}
	}
	return hashtags
}
