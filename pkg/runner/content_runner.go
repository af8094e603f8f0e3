package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-social-kit/pkg/domain"
	"github.com/shouni/go-social-kit/pkg/gemini"
	"github.com/shouni/go-social-kit/pkg/parser"
	"github.com/shouni/go-social-kit/pkg/prompts"
)

// LogoResolver はロゴ参照をインライン添付可能なバイト列へ解決する契約です。
// fetch.LogoFetcher がこれを満たします。
type LogoResolver interface {
	Fetch(ctx context.Context, rawURL string) (mimeType string, data []byte, ok bool)
}

// ContentRunner は1件分の往復（プロンプト構築、生成呼び出し、パース）を実行します。
type ContentRunner struct {
	mode          domain.Mode
	model         string
	promptBuilder *prompts.Builder
	parser        *parser.Parser
	aiClient      gemini.GenerativeModel
	logoResolver  LogoResolver
}

// NewContentRunner は依存関係を注入して初期化します。
// logoResolver は一括モードでのみ使用されます。不要なら nil で構いません。
func NewContentRunner(
	mode domain.Mode,
	model string,
	ai gemini.GenerativeModel,
	logoResolver LogoResolver,
) *ContentRunner {
	return &ContentRunner{
		mode:          mode,
		model:         model,
		promptBuilder: prompts.NewBuilder(mode),
		parser:        parser.New(mode),
		aiClient:      ai,
		logoResolver:  logoResolver,
	}
}

// Run は1行分のコンテンツパッケージを生成します。
// ロゴ取得を含む往復全体がこの呼び出しの中で完結します。
func (cr *ContentRunner) Run(ctx context.Context, row domain.SourceRow) (*domain.GeneratedContent, error) {
	req := domain.GenerationRequest{}

	// ロゴは一括モード限定。取得に失敗しても行は失敗させず、ロゴなしで続行する。
	logoAttached := false
	if cr.mode == domain.ModeBatch && row.LogoURL != "" && cr.logoResolver != nil {
		if mimeType, data, ok := cr.logoResolver.Fetch(ctx, row.LogoURL); ok {
			req.ReferenceMIMEType = mimeType
			req.ReferenceData = data
			logoAttached = true
		}
	}

	req.Prompt = cr.promptBuilder.Build(row, logoAttached)

	slog.Info("生成エンドポイントを呼び出します", "model", cr.model, "mode", string(cr.mode), "logo_attached", logoAttached)
	resp, err := cr.aiClient.GenerateContent(ctx, req, cr.model)
	if err != nil {
		return nil, fmt.Errorf("コンテンツ生成に失敗しました: %w", err)
	}

	content, err := cr.parser.Parse(resp)
	if err != nil {
		return nil, err
	}

	// 元のロゴ参照はそのまま引き継ぐ（一括モードのみ）。
	if cr.mode == domain.ModeBatch {
		content.LogoURL = row.LogoURL
	}

	return content, nil
}
