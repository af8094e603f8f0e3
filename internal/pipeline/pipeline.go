package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shouni/go-social-kit/internal/builder"
	"github.com/shouni/go-social-kit/internal/config"
	"github.com/shouni/go-social-kit/pkg/domain"
	"github.com/shouni/go-social-kit/pkg/share"

	gcsfactory "github.com/shouni/go-remote-io/remoteio/gcs"
)

// ExecuteSingle は、職業とお題だけを入力に1件分のコンテンツパッケージを生成して
// 保存するのだ。画像が返らなければエラーで終わるのだ。
func ExecuteSingle(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	row := domain.SourceRow{
		BrandName: cfg.Options.Profession,
		Prompt:    cfg.Options.Prompt,
	}

	contentRunner := builder.BuildContentRunner(appCtx, domain.ModeSingle)

	slog.Info("単発生成を開始するのだ...", "profession", cfg.Options.Profession)
	content, err := contentRunner.Run(ctx, row)
	if err != nil {
		return fmt.Errorf("コンテンツ生成に失敗しました: %w", err)
	}

	pub := builder.BuildPublisher(appCtx, "")
	if err := pub.SaveSingle(ctx, content); err != nil {
		return fmt.Errorf("生成結果の保存に失敗しました: %w", err)
	}

	slog.Info("単発生成が完了したのだ！", "titles", len(content.Titles))
	return nil
}

// ExecuteBatch は、スプレッドシートを読み込み、行ごとの逐次生成と
// 成果物（行別画像 + まとめPDF）の書き出しを実行するのだ。
func ExecuteBatch(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	// --- Phase 1: Ingest Phase (取り込み) ---
	rowReader := builder.BuildRowReader(appCtx)
	rows, err := rowReader.ReadRows(ctx, cfg.Options.InputFile)
	if err != nil {
		return fmt.Errorf("スプレッドシート '%s' の取り込みに失敗しました: %w", cfg.Options.InputFile, err)
	}

	// --- Phase 2: Generate Phase (逐次生成) ---
	slog.Info("Phase 2: 逐次生成を開始するのだ...", "rows", len(rows))
	batchRunner := builder.BuildBatchRunner(appCtx)
	results := batchRunner.Run(ctx, rows, func(completed, total, percent int) {
		slog.Info("生成の進み具合なのだ", "completed", completed, "total", total, "percent", percent)
	})

	// --- Phase 3: Publish Phase (書き出し) ---
	slog.Info("Phase 3: 成果物の書き出しを開始するのだ...")
	pub := builder.BuildPublisher(appCtx, cfg.Options.InputFile)
	if err := pub.Publish(ctx, rows, results); err != nil {
		return fmt.Errorf("成果物の書き出しに失敗しました: %w", err)
	}

	slog.Info("バッチ処理が完了したのだ！", "succeeded", results.SuccessCount(), "total", len(rows))
	return nil
}

// ExecuteShare は、保存済みのコンテンツJSONを読み込み、指定プラットフォームの
// 共有インテントURLを組み立てるのだ。Webの共有口がない行き先は本文を
// クリップボードへ送るのだ。AIクライアントは使わないので初期化しないのだ。
func ExecuteShare(ctx context.Context, cfg *config.Config) error {
	gcsFactory, err := gcsfactory.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to create GCS client factory: %w", err)
	}
	reader, err := gcsFactory.InputReader()
	if err != nil {
		return err
	}

	rc, err := reader.Open(ctx, cfg.Options.ContentFile)
	if err != nil {
		return fmt.Errorf("コンテンツJSON '%s' の読み込みに失敗しました: %w", cfg.Options.ContentFile, err)
	}
	defer rc.Close()

	var content domain.GeneratedContent
	if err := json.NewDecoder(rc).Decode(&content); err != nil {
		return fmt.Errorf("コンテンツJSON '%s' のデコードに失敗しました: %w", cfg.Options.ContentFile, err)
	}

	// --copy 指定時は共有URLを作らず、該当フィールドだけコピーして終わるのだ
	if cfg.Options.CopyField != "" {
		return copyField(&content, cfg.Options.CopyField)
	}

	target, err := share.IntentURL(cfg.Options.Platform, &content, cfg.Options.PageURL)
	if err != nil {
		return err
	}

	if target.Clipboard {
		if err := share.CopyText(share.Text(&content)); err != nil {
			return err
		}
		slog.Info("Webの共有口がないため本文をクリップボードへコピーしたのだ", "platform", target.Platform)
		return nil
	}

	// 共有URLは成果物なので標準出力へ出す。ログ装飾はしない。
	fmt.Println(target.URL)
	return nil
}

// copyField は "titles"（または "titles:3" の1始まり指定）・"description"・
// "hashtags" のいずれかをクリップボードへコピーするのだ。
func copyField(content *domain.GeneratedContent, field string) error {
	name, indexPart, hasIndex := strings.Cut(field, ":")
	switch strings.ToLower(name) {
	case "titles", "title":
		index := 1
		if hasIndex {
			n, err := strconv.Atoi(indexPart)
			if err != nil {
				return fmt.Errorf("%w: タイトル番号が読めません: %s", domain.ErrInvalidInput, indexPart)
			}
			index = n
		}
		if err := share.CopyTitle(content, index-1); err != nil {
			return err
		}
		slog.Info("タイトルをクリップボードへコピーしたのだ", "index", index)
		return nil
	case "description":
		if err := share.CopyDescription(content); err != nil {
			return err
		}
		slog.Info("説明文をクリップボードへコピーしたのだ")
		return nil
	case "hashtags":
		if err := share.CopyHashtags(content); err != nil {
			return err
		}
		slog.Info("ハッシュタグをクリップボードへコピーしたのだ")
		return nil
	default:
		return fmt.Errorf("%w: コピーできないフィールドです: %s", domain.ErrInvalidInput, field)
	}
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、アプリケーションコンテキストを初期化して返すのだ。
// ライフサイクル管理用の context と設定オブジェクトを受け取るのだ。
// 初期化中にエラーが発生した場合は、AppContext のポインタとエラーを返すのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	aiClient, err := builder.InitializeAIClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create ai client: %w", err)
	}

	gcsFactory, err := gcsfactory.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.InputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.OutputWriter()
	if err != nil {
		return nil, err
	}

	appCtx := builder.NewAppContext(cfg, aiClient, reader, writer)
	return &appCtx, nil
}
