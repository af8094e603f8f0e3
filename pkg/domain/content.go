package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// SourceRow は1件分の生成入力です。スプレッドシートの1行、
// または単発モードのプロンプト＋職業ペアから導出されます。読み取り後は不変です。
type SourceRow struct {
	BrandName    string `json:"brand_name"`
	Prompt       string `json:"prompt"`
	Content      string `json:"content"`
	PlatformType string `json:"platform_type"`
	TypeOfPost   string `json:"type_of_post"`
	FontStyle    string `json:"font_style"`
	PhoneNumber  string `json:"phone_number"`
	EmailID      string `json:"email_id"`
	LogoURL      string `json:"logo_url"`
}

// Topic は prompt 優先で自由記述トピックを返します。どちらも空なら空文字列です。
func (r SourceRow) Topic() string {
	if r.Prompt != "" {
		return r.Prompt
	}
	return r.Content
}

// HasContact は電話番号かメールアドレスのいずれかが存在するかを返します。
func (r SourceRow) HasContact() bool {
	return r.PhoneNumber != "" || r.EmailID != ""
}

// GenerationRequest は1回の呼び出しのためだけに存在する派生データです。
// 合成済みの指示文字列と、任意のインライン参照画像（ロゴ）を保持します。
type GenerationRequest struct {
	Prompt string

	// ReferenceMIMEType / ReferenceData は一括モードでロゴ取得に成功した場合のみ設定されます。
	ReferenceMIMEType string
	ReferenceData     []byte
}

// ResponsePart は生成エンドポイント応答の1パートです。
// テキストか inlineData（画像）のどちらか一方を運びます。
type ResponsePart struct {
	Text     string
	MIMEType string
	Data     []byte
}

// GenerationResponse は生成エンドポイントの生の応答をSDK非依存の形に写したものです。
// パーサーはこの構造体だけを入力に取ります。
type GenerationResponse struct {
	Parts []ResponsePart
}

// Text は全テキストパートを連結し、前後の空白を除去して返します。
func (r *GenerationResponse) Text() string {
	var sb strings.Builder
	for _, p := range r.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String())
}

// GeneratedContent は1行（または1プロンプト）分の出力レコードです。
// 生成後は変更されず、再生成時には丸ごと置き換えられます。
// 不変条件: 抽出に失敗したフィールドも必ず非空のプレースホルダーを持ちます。
type GeneratedContent struct {
	Titles      []string `json:"titles"`
	Description string   `json:"description"`
	Hashtags    []string `json:"hashtags"`

	// ImageURL は data URI 形式の自己完結した画像参照です。生成に画像が含まれなければ空です。
	ImageURL string `json:"imageUrl"`

	// LogoURL は一括モードで元のロゴ参照をそのまま引き継ぎます。
	LogoURL string `json:"logoUrl,omitempty"`
}

// BatchResult は入力行とインデックスが揃った結果列です。
// nil は生成またはパースが完全に失敗した行を示します。
type BatchResult []*GeneratedContent

// SuccessCount は非nilエントリーの数を返します。
func (br BatchResult) SuccessCount() int {
	n := 0
	for _, c := range br {
		if c != nil {
			n++
		}
	}
	return n
}

// BuildDataURI はMIMEタイプと生バイト列から data URI を組み立てます。
func BuildDataURI(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// DecodeDataURI は data URI をMIMEタイプと生バイト列に分解します。
func DecodeDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, fmt.Errorf("data URIではありません: %q", truncate(uri, 40))
	}
	rest := strings.TrimPrefix(uri, "data:")
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("data URIの区切りが見つかりません")
	}
	mimeType := strings.TrimSuffix(meta, ";base64")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("base64のデコードに失敗しました: %w", err)
	}
	return mimeType, data, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
