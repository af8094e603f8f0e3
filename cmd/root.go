package cmd

import (
	"fmt"
	"os"

	"github.com/shouni/go-social-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// opts は addAppFlags で各フラグと紐付く実行時パラメータなのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "o", config.DefaultOutputDir, "成果物を保存するディレクトリ（ローカル or gs://...）なのだ。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.AIModel, "model", config.DefaultModel, "使用する Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "ロゴ取得など Web リクエストのタイムアウトなのだ。")

	// --- 単発生成固有 ---
	generateCmd.Flags().StringVarP(&opts.Profession, "profession", "P", config.DefaultProfession, "コンテンツの書き手となる職業・役割なのだ。")
	generateCmd.Flags().StringVarP(&opts.Prompt, "prompt", "p", "", "生成のお題となるプロンプトなのだ。")

	// --- バッチ生成固有 ---
	batchCmd.Flags().StringVarP(&opts.InputFile, "file", "f", "", "ブランド行を並べたスプレッドシート（.xlsx）のパスなのだ。")

	// --- 共有固有 ---
	shareCmd.Flags().StringVar(&opts.Platform, "platform", "", "共有先プラットフォーム名（twitter, facebook, instagram など）なのだ。")
	shareCmd.Flags().StringVar(&opts.ContentFile, "content", "", "共有する保存済みコンテンツJSONのパスなのだ。")
	shareCmd.Flags().StringVar(&opts.PageURL, "page-url", "", "共有URLに載せるリンク先ページなのだ。")
	shareCmd.Flags().StringVar(&opts.CopyField, "copy", "", "URLの代わりに指定フィールドをクリップボードへコピーするのだ（titles[:n] / description / hashtags）。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// .env があれば先に読む。無くてもエラーにはしないのだ。
	_ = godotenv.Load()

	// share はローカル完結なのでAPIキーなしでも動くのだ
	if cmd.Name() == "share" {
		return nil
	}

	// Gemini APIを利用するため、APIキーの存在チェックは欠かせないのだ！
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。Gemini APIの利用には必須なのだ")
	}

	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"go-social-kit",
		addAppFlags,
		preRunAppE,
		generateCmd,
		batchCmd,
		shareCmd,
	)
}
