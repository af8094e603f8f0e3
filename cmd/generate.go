package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-social-kit/internal/config"
	"github.com/shouni/go-social-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// generateCmd は、単発のSNSコンテンツパッケージ生成を実行するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "AIにSNS投稿ひとそろいを生成させますなのだ。",
	Long: `職業とお題から、タイトル10本・説明文・ハッシュタグ10個・投稿画像を
ひとまとめに生成するのだ。出力は画像ファイルとコンテンツJSONになるのだよ。`,
	RunE: generateCommand,
}

func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 必須チェック
	if opts.Prompt == "" {
		return fmt.Errorf("お題（--prompt）を指定してほしいのだ")
	}

	// 2. 環境変数等から基本設定をロードするのだ
	cfg := config.LoadConfig()
	cfg.GeminiModel = opts.AIModel
	if opts.HTTPTimeout > 0 {
		cfg.HTTPTimeout = opts.HTTPTimeout
	}
	cfg.Options = opts

	slog.Info("単発生成パイプラインを起動するのだ！",
		"profession", opts.Profession,
		"model", cfg.GeminiModel,
		"output", opts.OutputDir)

	if err := pipeline.ExecuteSingle(ctx, cfg); err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての生成工程が完了したのだ！")
	return nil
}
