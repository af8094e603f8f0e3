package runner

import (
	"context"
	"log/slog"
	"math"
	"time"

	"golang.org/x/time/rate"

	"github.com/shouni/go-social-kit/pkg/domain"
)

// ProgressFunc は1行完了するたびに呼ばれる進捗通知です。
// percent は round((completed/total)*100) で丸めた値です。
type ProgressFunc func(completed, total, percent int)

// BatchRunner はデータセット全行の生成を厳密に逐次実行します。
// 行の並列化は意図的に行いません。外部エンドポイントへの呼び出し順を
// 決定的に保ち、行単位の失敗を単純に分離するためです。
type BatchRunner struct {
	content  *ContentRunner
	interval time.Duration
}

// NewBatchRunner は BatchRunner を生成します。
// interval が正の場合、行間にレートリミッターを挟みます。0なら制限なしです。
func NewBatchRunner(content *ContentRunner, interval time.Duration) *BatchRunner {
	return &BatchRunner{content: content, interval: interval}
}

// Run は N 行の入力から必ず長さ N のインデックス整合な BatchResult を作ります。
// 1行の失敗はその位置を nil として記録し、処理は次の行へ継続します。
// 一括処理が nil 以外を返さないことはなく、途中で中断もしません。
func (br *BatchRunner) Run(ctx context.Context, rows []domain.SourceRow, progress ProgressFunc) domain.BatchResult {
	total := len(rows)
	results := make(domain.BatchResult, total)

	var limiter *rate.Limiter
	if br.interval > 0 {
		limiter = rate.NewLimiter(rate.Every(br.interval), 1)
	}

	for i, row := range rows {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				slog.Warn("レートリミッター待機が中断されました", "index", i, "error", err)
			}
		}

		content, err := br.content.Run(ctx, row)
		if err != nil {
			// 1行の失敗でバッチ全体を止めない。該当インデックスは nil のまま。
			slog.Warn("行の生成に失敗しました", "index", i, "brand", row.BrandName, "error", err)
			results[i] = nil
		} else {
			results[i] = content
		}

		if progress != nil {
			percent := int(math.Round(float64(i+1) / float64(total) * 100))
			progress(i+1, total, percent)
		}
	}

	slog.Info("一括生成が完了しました", "total", total, "succeeded", results.SuccessCount())
	return results
}
