package domain

// Mode は生成モード（単発プロンプト or スプレッドシート一括）を表します。
// タイトルとハッシュタグの要求数はモードによって固定されます。
type Mode string

const (
	// ModeSingle は単発プロンプトモードです。タイトル10件・ハッシュタグ10件を要求します。
	ModeSingle Mode = "single"
	// ModeBatch はスプレッドシート一括モードです。タイトル3件・ハッシュタグ5件を要求します。
	ModeBatch Mode = "batch"
)

// IrrelevantSentinel は、トピックがSNSコンテンツ制作と無関係だとモデルが判断した場合に
// JSONの代わりに返すよう指示するリテラルトークンです（単発モード限定）。
const IrrelevantSentinel = "IRRELEVANT_CONTENT"

// 抽出に失敗したフィールドへ代入する固定プレースホルダーの定義
const (
	PlaceholderTitle       = "No title generated"
	PlaceholderDescription = "No description generated"
	PlaceholderHashtag     = "#nohashtags"
)

// TitleCount は、このモードで要求するタイトル数を返します。
func (m Mode) TitleCount() int {
	if m == ModeSingle {
		return 10
	}
	return 3
}

// HashtagCount は、このモードで要求するハッシュタグ数を返します。
func (m Mode) HashtagCount() int {
	if m == ModeSingle {
		return 10
	}
	return 5
}

// FailsOnEmptyContent は、構造化パースと正規表現サルベージの両方が空振りした際に
// 行全体を失敗として扱うかどうかを返します。
// 一括モードはプレースホルダーで埋めて継続し、単発モードはエラーとして表面化させます。
func (m Mode) FailsOnEmptyContent() bool {
	return m == ModeSingle
}

// RequiresImage は、画像パートの欠落を致命的エラーとして扱うかどうかを返します。
func (m Mode) RequiresImage() bool {
	return m == ModeSingle
}
