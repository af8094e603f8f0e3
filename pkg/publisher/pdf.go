package publisher

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/shouni/go-social-kit/pkg/domain"
)

// ページレイアウトの座標定義（mm、A4縦）。初代実装のjsPDFレイアウトと同一です。
const (
	marginLeft    = 14.0
	indentLeft    = 20.0
	lineHeight    = 6.0
	descWidth     = 180.0
	imageWidth    = 80.0
	imageHeight   = 60.0
	footerOffsetY = 10.0
	footerOffsetX = 28.0
)

// ComposePDF は非nilの結果1件につき1ページのPDFを組み立てます。
// nil行はページを作らず、ページ番号にも空きを残しません。
// 返り値は PDF のバイト列と出力したページ数です。
func ComposePDF(rows []domain.SourceRow, results domain.BatchResult) (*bytes.Buffer, int, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, pageHeight := pdf.GetPageSize()

	pageCount := 0
	for i, content := range results {
		if content == nil {
			continue
		}
		var row domain.SourceRow
		if i < len(rows) {
			row = rows[i]
		}

		pdf.AddPage()
		pageCount++

		// ヘッダー: ブランド名とプラットフォーム
		brand := orLabel(row.BrandName, "Brand")
		platform := orLabel(row.PlatformType, "Social Media")
		pdf.SetFont("Helvetica", "B", 18)
		pdf.Text(marginLeft, 20, tr(fmt.Sprintf("%s - %s", brand, platform)))

		pdf.SetFont("Helvetica", "", 12)
		pdf.Text(marginLeft, 30, tr(fmt.Sprintf("Type: %s", orLabel(row.TypeOfPost, "N/A"))))
		pdf.Text(marginLeft, 36, tr(fmt.Sprintf("Font Style: %s", orLabel(row.FontStyle, "N/A"))))

		// 番号付きタイトル
		pdf.SetFont("Helvetica", "", 14)
		pdf.Text(marginLeft, 46, "Titles:")
		pdf.SetFont("Helvetica", "", 12)
		for idx, title := range content.Titles {
			pdf.Text(indentLeft, 52+float64(idx)*lineHeight, tr(fmt.Sprintf("%d. %s", idx+1, title)))
		}

		// 説明文（ワードラップ）
		yPos := 52 + float64(len(content.Titles))*lineHeight + 4
		pdf.SetFont("Helvetica", "", 14)
		pdf.Text(marginLeft, yPos, "Description:")
		pdf.SetFont("Helvetica", "", 12)
		descLines := pdf.SplitText(tr(content.Description), descWidth)
		for k, line := range descLines {
			pdf.Text(indentLeft, yPos+lineHeight+float64(k)*lineHeight, line)
		}

		// ハッシュタグ（スペース結合）
		hashtagY := yPos + lineHeight + float64(len(descLines))*lineHeight + 4
		pdf.SetFont("Helvetica", "", 14)
		pdf.Text(marginLeft, hashtagY, "Hashtags:")
		pdf.SetFont("Helvetica", "", 12)
		pdf.Text(indentLeft, hashtagY+lineHeight, tr(strings.Join(content.Hashtags, " ")))

		// 連絡先ブロック（存在する場合のみ）
		contactY := hashtagY + 16
		if row.HasContact() {
			pdf.SetFont("Helvetica", "", 14)
			pdf.Text(marginLeft, contactY, "Contact Information:")
			pdf.SetFont("Helvetica", "", 12)
			if row.PhoneNumber != "" {
				pdf.Text(indentLeft, contactY+lineHeight, tr(fmt.Sprintf("Phone: %s", row.PhoneNumber)))
			}
			if row.EmailID != "" {
				emailY := contactY + lineHeight
				if row.PhoneNumber != "" {
					emailY = contactY + 2*lineHeight
				}
				pdf.Text(indentLeft, emailY, tr(fmt.Sprintf("Email: %s", row.EmailID)))
			}
		}

		// 生成画像の埋め込み。失敗してもページは捨てない。
		if content.ImageURL != "" {
			if err := embedImage(pdf, content.ImageURL, pageCount, marginLeft, contactY+20); err != nil {
				slog.Warn("PDFへの画像埋め込みに失敗しました", "page", pageCount, "error", err)
			}
		}

		// ページ番号フッター
		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(pageWidth-footerOffsetX, pageHeight-footerOffsetY, fmt.Sprintf("Page %d", pageCount))
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, 0, fmt.Errorf("PDFの出力に失敗しました: %w", err)
	}
	return buf, pageCount, nil
}

// embedImage は data URI の画像をデコードしてページに配置します。
// fpdf 内部のエラーはドキュメント全体に波及するため、登録前にバイト列を検証します。
func embedImage(pdf *fpdf.Fpdf, dataURI string, page int, x, y float64) error {
	mimeType, data, err := domain.DecodeDataURI(dataURI)
	if err != nil {
		return err
	}

	imageType := ""
	switch mimeType {
	case "image/png":
		imageType = "PNG"
	case "image/jpeg", "image/jpg":
		imageType = "JPG"
	case "image/gif":
		imageType = "GIF"
	default:
		return fmt.Errorf("PDFへ埋め込めないMIMEタイプです: %s", mimeType)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("画像データを解釈できません: %w", err)
	}

	name := fmt.Sprintf("content-image-%d", page)
	opts := fpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	pdf.ImageOptions(name, x, y, imageWidth, imageHeight, false, opts, 0, "")
	return pdf.Error()
}

func orLabel(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
