package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/shouni/go-social-kit/pkg/domain"
)

// GenerativeModel は、マルチモーダル生成エンドポイント呼び出しの契約です。
// 1回の呼び出しで画像とテキストの両モダリティを要求します。
type GenerativeModel interface {
	GenerateContent(ctx context.Context, req domain.GenerationRequest, model string) (*domain.GenerationResponse, error)
}

// Config は Gemini クライアントの初期化設定です。
type Config struct {
	APIKey      string
	Temperature *float32
}

// Client は genai SDK を包む薄いラッパーです。
// リトライもキャッシュも応答形状の検証も行いません。検証はパーサーの責務です。
type Client struct {
	client      *genai.Client
	temperature *float32
}

// NewClient は Gemini API クライアントを初期化します。
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("APIキーが設定されていません: %w", domain.ErrInvalidInput)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}

	return &Client{client: client, temperature: cfg.Temperature}, nil
}

// GenerateContent は合成済みプロンプト（と任意のインライン参照画像）を1回だけ送信し、
// 応答を SDK 非依存の GenerationResponse へ写して返します。
// 同一プロンプトでも呼び出しごとに必ず新しいリクエストを発行します。
func (c *Client) GenerateContent(ctx context.Context, req domain.GenerationRequest, model string) (*domain.GenerationResponse, error) {
	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	if len(req.ReferenceData) > 0 {
		parts = append(parts, genai.NewPartFromBytes(req.ReferenceData, req.ReferenceMIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
		ResponseMIMEType:   "text/plain",
		Temperature:        c.temperature,
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}

	return adaptResponse(resp), nil
}

// adaptResponse は先頭候補のパート列を domain.GenerationResponse に写します。
// 候補が空でもエラーにはしません。空応答の扱いはパーサーが決めます。
func adaptResponse(resp *genai.GenerateContentResponse) *domain.GenerationResponse {
	adapted := &domain.GenerationResponse{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return adapted
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}
		if part.InlineData != nil {
			adapted.Parts = append(adapted.Parts, domain.ResponsePart{
				MIMEType: part.InlineData.MIMEType,
				Data:     part.InlineData.Data,
			})
			continue
		}
		if part.Text != "" {
			adapted.Parts = append(adapted.Parts, domain.ResponsePart{Text: part.Text})
		}
	}
	return adapted
}
