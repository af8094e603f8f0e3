package cmd

import (
	"fmt"

	"github.com/shouni/go-social-kit/internal/config"
	"github.com/shouni/go-social-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// shareCmd は、保存済みコンテンツの共有インテントURLを組み立てるのだ。
var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "生成済みコンテンツの共有URLを作りますなのだ。",
	Long: `generate が保存したコンテンツJSONを読み込み、指定プラットフォームの
共有インテントURLを標準出力に出すのだ。instagram のようにWebの共有口が
ないところは、本文をクリップボードへコピーするのだよ。`,
	RunE: shareCommand,
}

func shareCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 必須チェック
	if opts.Platform == "" && opts.CopyField == "" {
		return fmt.Errorf("共有先（--platform）かコピー対象（--copy）を指定してほしいのだ")
	}
	if opts.ContentFile == "" {
		return fmt.Errorf("コンテンツJSON（--content）を指定してほしいのだ")
	}

	cfg := config.LoadConfig()
	cfg.Options = opts

	if err := pipeline.ExecuteShare(ctx, cfg); err != nil {
		return fmt.Errorf("共有URLの組み立てに失敗したのだ: %w", err)
	}

	return nil
}
