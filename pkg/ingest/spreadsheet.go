package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/shouni/go-social-kit/pkg/domain"
)

// InputOpener はスプレッドシートの取得元です。
// remoteio.InputReader がそのまま満たす形にしてあり、GCS URIもローカルパスも扱えます。
type InputOpener interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// columnSetters は認識するカラムヘッダーと SourceRow フィールドの対応です。
// 未知のカラムは無視します。
var columnSetters = map[string]func(*domain.SourceRow, string){
	"brand_name":    func(r *domain.SourceRow, v string) { r.BrandName = v },
	"prompt":        func(r *domain.SourceRow, v string) { r.Prompt = v },
	"content":       func(r *domain.SourceRow, v string) { r.Content = v },
	"platform_type": func(r *domain.SourceRow, v string) { r.PlatformType = v },
	"type_of_post":  func(r *domain.SourceRow, v string) { r.TypeOfPost = v },
	"font_style":    func(r *domain.SourceRow, v string) { r.FontStyle = v },
	"phone_number":  func(r *domain.SourceRow, v string) { r.PhoneNumber = v },
	"email_id":      func(r *domain.SourceRow, v string) { r.EmailID = v },
	"logo_url":      func(r *domain.SourceRow, v string) { r.LogoURL = v },
}

// RowReader はアップロードされたスプレッドシートを SourceRow の順序付き列へ変換します。
type RowReader struct {
	opener InputOpener
}

// NewRowReader は取得元を注入して RowReader を生成します。
func NewRowReader(opener InputOpener) *RowReader {
	return &RowReader{opener: opener}
}

// ValidatePath は拡張子レベルのファイル種別チェックです。
// OOXML形式（.xlsx / .xlsm）以外はユーザー向けメッセージ付きで拒否します。
func ValidatePath(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return nil
	default:
		return fmt.Errorf("%w: please upload a valid Excel file (.xlsx or .xls)", domain.ErrInvalidInput)
	}
}

// ReadRows はファイル種別を検証し、先頭シートを行レコード列に変換します。
func (rr *RowReader) ReadRows(ctx context.Context, path string) ([]domain.SourceRow, error) {
	if err := ValidatePath(path); err != nil {
		return nil, err
	}

	rc, err := rr.opener.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("スプレッドシート '%s' のオープンに失敗しました: %w", path, err)
	}
	defer rc.Close()

	rows, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("スプレッドシート '%s' の読み取りに失敗しました: %w", path, err)
	}

	slog.Info("スプレッドシートを読み込みました", "path", path, "rows", len(rows))
	return rows, nil
}

// Read はワークブックの先頭シートだけを読み、1行目をヘッダーとして
// 以降の各行を SourceRow に写します。空行はスキップします。
func Read(r io.Reader) ([]domain.SourceRow, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: ワークブックとして解釈できません: %v", domain.ErrInvalidInput, err)
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: ワークブックにシートがありません", domain.ErrInvalidInput)
	}

	cells, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("シート '%s' の行取得に失敗しました: %w", sheet, err)
	}
	if len(cells) < 2 {
		return nil, fmt.Errorf("%w: ヘッダー行の下にデータ行がありません", domain.ErrInvalidInput)
	}

	headers := make([]string, len(cells[0]))
	for i, h := range cells[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}
	slog.Info("ヘッダー行を検出しました", "sheet", sheet, "columns", headers)

	var rows []domain.SourceRow
	for _, line := range cells[1:] {
		row, empty := buildRow(headers, line)
		if empty {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func buildRow(headers []string, line []string) (domain.SourceRow, bool) {
	var row domain.SourceRow
	empty := true
	for i, value := range line {
		value = strings.TrimSpace(value)
		if value == "" || i >= len(headers) {
			continue
		}
		empty = false
		if setter, ok := columnSetters[headers[i]]; ok {
			setter(&row, value)
		}
	}
	return row, empty
}
