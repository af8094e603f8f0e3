package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-social-kit/internal/config"
	"github.com/shouni/go-social-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// batchCmd は、スプレッドシートの行ごとに逐次生成してPDFへまとめるのだ。
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "スプレッドシートのブランド行を一括で処理しますなのだ。",
	Long: `.xlsx の各行をブランド1件として読み込み、行ごとにタイトル・説明文・
ハッシュタグ・画像を生成するのだ。結果は行別の画像と1冊のPDFになるのだよ。
失敗した行は飛ばして進み、最後にまとめて報告するのだ。`,
	RunE: batchCommand,
}

func batchCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 必須チェック
	if opts.InputFile == "" {
		return fmt.Errorf("入力スプレッドシート（--file）を指定してほしいのだ")
	}

	// 2. 環境変数等から基本設定をロードするのだ
	cfg := config.LoadConfig()
	cfg.GeminiModel = opts.AIModel
	if opts.HTTPTimeout > 0 {
		cfg.HTTPTimeout = opts.HTTPTimeout
	}
	cfg.Options = opts

	slog.Info("バッチ生成パイプラインを起動するのだ！",
		"input", opts.InputFile,
		"model", cfg.GeminiModel,
		"output", opts.OutputDir)

	if err := pipeline.ExecuteBatch(ctx, cfg); err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての生成工程が完了したのだ！")
	return nil
}
