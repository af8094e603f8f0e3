package prompts

import "strings"

// styleEntry はスタイル対応表の1エントリーです。
// マップではなく順序付きリストとして保持し、上から順に部分一致で評価します。
// 先勝ちの判定順を宣言順に固定するためです。
type styleEntry struct {
	key  string
	hint string
}

// 入力フィールドが空の場合に使用する汎用デフォルトの定義
const (
	DefaultProfession = "Social Media Manager"
	DefaultTopic      = "Create engaging social media content"
	DefaultPlatform   = "General social media"
	DefaultPostType   = "Standard post"
	DefaultFontStyle  = "Professional"

	// DefaultImageStyle はプラットフォーム名がどのキーにも一致しない場合の画像スタイルです。
	DefaultImageStyle = "balanced composition with appropriate text overlay"

	// DefaultPostTypeStyle は投稿種別がどのキーにも一致しない場合のスタイルです。
	DefaultPostTypeStyle = "clear and versatile presentation suited to a general audience"
)

// platformImageStyles はプラットフォーム名（小文字部分一致）と画像スタイルの対応表です。
var platformImageStyles = []styleEntry{
	{"instagram", "square format with vibrant colors and lifestyle focus"},
	{"facebook", "engaging with clear focal point and moderate text overlay"},
	{"twitter", "clear and sharp with minimal text overlay"},
	{"linkedin", "professional looking with business-appropriate imagery and clean text layout"},
	{"pinterest", "vertical format with inspirational style and clear typography"},
	{"tiktok", "dynamic and trendy with bold text elements"},
	{"youtube", "high contrast thumbnail style with prominent text"},
}

// postTypeStyles は投稿種別（小文字部分一致）とトーン指示の対応表です。一括モードのみ使用します。
var postTypeStyles = []styleEntry{
	{"product", "product-centered composition highlighting features and benefits"},
	{"promotional", "attention-grabbing promotional look with a clear call to action"},
	{"educational", "informative layout with structured, easy-to-scan visual hierarchy"},
	{"testimonial", "authentic, trust-building presentation featuring customer voice"},
	{"announcement", "bold announcement styling that makes the news unmissable"},
	{"engagement", "playful, conversation-starting visuals that invite interaction"},
	{"behind-the-scenes", "candid, personal atmosphere with an informal feel"},
	{"event", "energetic event styling with date and venue prominence"},
}

// fontCharacteristics はフォントスタイル（小文字部分一致）と文字表現の対応表です。
// どのキーにも一致しない場合は professional のエントリーへフォールバックします。
var fontCharacteristics = []styleEntry{
	{"professional", "clean sans-serif fonts like Arial or Helvetica with professional color scheme"},
	{"casual", "friendly rounded fonts with vibrant colors"},
	{"elegant", "serif fonts like Georgia or Garamond with sophisticated color palette"},
	{"bold", "heavy weight fonts with high contrast colors"},
	{"minimalist", "thin, simple fonts with plenty of white space"},
	{"creative", "unique stylized fonts with artistic color combinations"},
	{"vintage", "retro-style typography with muted or aged color palette"},
	{"modern", "contemporary geometric fonts with trendy color schemes"},
}

// lookup は対応表を宣言順に走査し、value が key を部分文字列として含む最初のヒントを返します。
func lookup(entries []styleEntry, value, fallback string) string {
	lower := strings.ToLower(value)
	for _, e := range entries {
		if strings.Contains(lower, e.key) {
			return e.hint
		}
	}
	return fallback
}

// ImageStyleFor はプラットフォーム名に対応する画像スタイルヒントを返します。
func ImageStyleFor(platformType string) string {
	return lookup(platformImageStyles, platformType, DefaultImageStyle)
}

// PostTypeStyleFor は投稿種別に対応するスタイルヒントを返します。
func PostTypeStyleFor(typeOfPost string) string {
	return lookup(postTypeStyles, typeOfPost, DefaultPostTypeStyle)
}

// FontCharacteristicsFor はフォントスタイルに対応する文字表現ヒントを返します。
func FontCharacteristicsFor(fontStyle string) string {
	return lookup(fontCharacteristics, fontStyle, fontCharacteristics[0].hint)
}
