package builder

import (
	"context"
	"fmt"

	"github.com/shouni/go-social-kit/internal/config"
	"github.com/shouni/go-social-kit/pkg/domain"
	"github.com/shouni/go-social-kit/pkg/fetch"
	"github.com/shouni/go-social-kit/pkg/gemini"
	"github.com/shouni/go-social-kit/pkg/ingest"
	"github.com/shouni/go-social-kit/pkg/publisher"
	"github.com/shouni/go-social-kit/pkg/runner"

	"google.golang.org/genai"
)

// BuildContentRunner は1行分の生成往復を担当する Runner を構築します。
// 一括モードではロゴ取得コンポーネントも束ねます。
func BuildContentRunner(appCtx *AppContext, mode domain.Mode) *runner.ContentRunner {
	model := appCtx.Config.GeminiModel
	if appCtx.Options.AIModel != "" {
		model = appCtx.Options.AIModel
	}

	var logoResolver runner.LogoResolver
	if mode == domain.ModeBatch {
		logoResolver = fetch.NewLogoFetcher(appCtx.Config.HTTPTimeout)
	}

	return runner.NewContentRunner(mode, model, appCtx.aiClient, logoResolver)
}

// BuildBatchRunner は逐次バッチ実行を担当する Runner を構築します。
func BuildBatchRunner(appCtx *AppContext) *runner.BatchRunner {
	content := BuildContentRunner(appCtx, domain.ModeBatch)
	return runner.NewBatchRunner(content, appCtx.Config.RateInterval)
}

// BuildRowReader はスプレッドシート取り込みを構築します。
func BuildRowReader(appCtx *AppContext) *ingest.RowReader {
	return ingest.NewRowReader(appCtx.Reader)
}

// BuildPublisher は成果物書き出しを構築します。
func BuildPublisher(appCtx *AppContext, sourceFileName string) *publisher.ContentPublisher {
	outputDir := appCtx.Options.OutputDir
	if outputDir == "" {
		outputDir = config.DefaultOutputDir
	}
	return publisher.NewContentPublisher(appCtx.Writer, publisher.Options{
		OutputDir:      outputDir,
		SourceFileName: sourceFileName,
	})
}

// InitializeAIClient は gemini クライアントを初期化します。
func InitializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	const defaultGeminiTemperature = float32(0.7)
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}
