// Package publisher は生成済みコンテンツを配布物（画像・PDF・JSON）として書き出します。
package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/shouni/go-social-kit/pkg/domain"
)

// OutputWriter は成果物の書き込み先を抽象化します。
// remoteio.OutputWriter と構造的に互換で、GCSにもローカルにも書けます。
type OutputWriter interface {
	Write(ctx context.Context, path string, reader io.Reader, mimeType string) error
}

// Options は出力先ディレクトリと元ファイル名を保持します。
type Options struct {
	// OutputDir は成果物の書き込み先（ローカルパスまたは gs:// URI）。
	OutputDir string
	// SourceFileName はバッチの入力ファイル名。PDFの命名に使います。
	SourceFileName string
}

// ContentPublisher は生成結果を成果物へ変換して書き出します。
type ContentPublisher struct {
	writer OutputWriter
	opts   Options
}

// NewContentPublisher は ContentPublisher を生成します。
func NewContentPublisher(writer OutputWriter, opts Options) *ContentPublisher {
	return &ContentPublisher{writer: writer, opts: opts}
}

// Publish はバッチ結果を書き出します。行ごとの画像 post_<n>.png と、
// 全行をまとめた1つのPDFです。nil行は画像を持たずページにも現れません。
func (p *ContentPublisher) Publish(ctx context.Context, rows []domain.SourceRow, results domain.BatchResult) error {
	if results.SuccessCount() == 0 {
		return fmt.Errorf("%w: 書き出せる生成結果がありません", domain.ErrInvalidInput)
	}

	for i, content := range results {
		if content == nil || content.ImageURL == "" {
			continue
		}
		mimeType, data, err := domain.DecodeDataURI(content.ImageURL)
		if err != nil {
			slog.Warn("画像データの解釈に失敗したためスキップします", "row", i+1, "error", err)
			continue
		}
		name := p.join(fmt.Sprintf("post_%d%s", i+1, extensionFor(mimeType)))
		if err := p.writer.Write(ctx, name, bytes.NewReader(data), mimeType); err != nil {
			return fmt.Errorf("画像の書き込みに失敗しました (%s): %w", name, err)
		}
		slog.Info("画像を書き出しました", "path", name)
	}

	buf, pages, err := ComposePDF(rows, results)
	if err != nil {
		return err
	}
	pdfName := p.join(PDFFileName(p.opts.SourceFileName))
	if err := p.writer.Write(ctx, pdfName, buf, "application/pdf"); err != nil {
		return fmt.Errorf("PDFの書き込みに失敗しました (%s): %w", pdfName, err)
	}
	slog.Info("PDFを書き出しました", "path", pdfName, "pages", pages)
	return nil
}

// SaveSingle は単発生成の結果を書き出します。画像はミリ秒タイムスタンプ付きの
// ファイル名、テキスト部分はJSONとして保存します。
func (p *ContentPublisher) SaveSingle(ctx context.Context, content *domain.GeneratedContent) error {
	if content == nil {
		return fmt.Errorf("%w: 書き出せる生成結果がありません", domain.ErrInvalidInput)
	}

	now := time.Now().UnixMilli()

	if content.ImageURL != "" {
		mimeType, data, err := domain.DecodeDataURI(content.ImageURL)
		if err != nil {
			return fmt.Errorf("画像データの解釈に失敗しました: %w", err)
		}
		name := p.join(fmt.Sprintf("social-media-image-%d%s", now, extensionFor(mimeType)))
		if err := p.writer.Write(ctx, name, bytes.NewReader(data), mimeType); err != nil {
			return fmt.Errorf("画像の書き込みに失敗しました (%s): %w", name, err)
		}
		slog.Info("画像を書き出しました", "path", name)
	}

	doc, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("生成結果のJSON化に失敗しました: %w", err)
	}
	jsonName := p.join(fmt.Sprintf("social-media-content-%d.json", now))
	if err := p.writer.Write(ctx, jsonName, bytes.NewReader(doc), "application/json"); err != nil {
		return fmt.Errorf("JSONの書き込みに失敗しました (%s): %w", jsonName, err)
	}
	slog.Info("コンテンツを書き出しました", "path", jsonName)
	return nil
}

// PDFFileName は入力ファイル名からPDFの出力名を導きます。
// 入力が不明な場合は "generated" を使います。
func PDFFileName(sourceFileName string) string {
	base := "generated"
	if sourceFileName != "" {
		name := filepath.Base(sourceFileName)
		base = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return fmt.Sprintf("social-media-content-%s.pdf", base)
}

func (p *ContentPublisher) join(name string) string {
	if p.opts.OutputDir == "" {
		return name
	}
	if strings.HasPrefix(p.opts.OutputDir, "gs://") {
		return strings.TrimSuffix(p.opts.OutputDir, "/") + "/" + name
	}
	return filepath.Join(p.opts.OutputDir, name)
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
