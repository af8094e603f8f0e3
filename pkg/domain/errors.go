package domain

import "errors"

// エラー分類の定義。呼び出し側は errors.Is でモード別の失敗ポリシーを判定します。
var (
	// ErrInvalidInput は、アップロードファイルの種別不正や必須入力の欠落を表します。
	// 生成は一切試行されません。
	ErrInvalidInput = errors.New("invalid input")

	// ErrTransport は、生成エンドポイント呼び出し時のネットワーク・認証・クォータ失敗です。
	// 一括モードでは該当行を nil として記録し、単発モードではそのまま表面化します。
	ErrTransport = errors.New("generation transport failure")

	// ErrIrrelevantContent は、モデルがトピックを対象領域外だと明示的に通知した場合です（単発モード限定）。
	ErrIrrelevantContent = errors.New("content judged irrelevant")

	// ErrParseExhausted は、構造化パースと正規表現サルベージの両方が失敗した場合です。
	ErrParseExhausted = errors.New("response parse recovery exhausted")

	// ErrMissingImage は、単発モードで要求した生成画像が応答に含まれなかった場合です。
	ErrMissingImage = errors.New("no generated image in response")
)
