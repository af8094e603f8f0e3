package builder

import (
	"github.com/shouni/go-social-kit/internal/config"

	"github.com/shouni/go-social-kit/pkg/gemini"

	"github.com/shouni/go-remote-io/remoteio"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config   *config.Config         // Configは、環境変数から読み込まれたグローバルな設定です（APIキー、モデル名など）。
	Options  config.GenerateOptions // Optionsは、コマンドラインから渡された実行時の設定です（モード、入力ファイル、出力先など）。
	Reader   remoteio.InputReader   // Readerは、スプレッドシートや保存済みコンテンツの読み込みに使用する入力元です。
	Writer   remoteio.OutputWriter  // Writerは、生成された画像やPDFを保存するための出力先です。
	aiClient gemini.GenerativeModel // aiClient はGeminiの通信に使う共通クライアント
}

// NewAppContext は AppContext の新しいインスタンスを生成する
func NewAppContext(
	cfg *config.Config,
	aiClient gemini.GenerativeModel,
	reader remoteio.InputReader,
	writer remoteio.OutputWriter,
) AppContext {
	return AppContext{
		Config:   cfg,
		Options:  cfg.Options,
		aiClient: aiClient,
		Reader:   reader,
		Writer:   writer,
	}
}
