package fetch

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/shouni/go-social-kit/pkg/domain"
)

// maxLogoBytes はロゴ画像として受け付ける最大サイズです。
const maxLogoBytes = 8 << 20 // 8MiB

// LogoFetcher はロゴURLをインライン添付可能なバイト列へ解決します。
// 取得失敗は行の失敗にせず「ロゴなし」として扱います。
// 同一URLのロゴが複数行で使われるケースに備えて結果をキャッシュします。
type LogoFetcher struct {
	httpClient *http.Client
	cache      *cache.Cache
}

type cachedLogo struct {
	mimeType string
	data     []byte
}

// NewLogoFetcher はタイムアウト付きの LogoFetcher を生成します。
func NewLogoFetcher(timeout time.Duration) *LogoFetcher {
	return &LogoFetcher{
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache.New(30*time.Minute, 1*time.Hour),
	}
}

// Fetch はロゴ参照をMIMEタイプと生バイト列に解決します。
// data URI はネットワークを介さずそのまま分解し、http(s) URL は取得して返します。
// 解決できない場合は ok=false を返し、エラーは返しません。
func (f *LogoFetcher) Fetch(ctx context.Context, rawURL string) (string, []byte, bool) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", nil, false
	}

	// すでに自己完結した data URI ならそのまま通す。
	if strings.HasPrefix(rawURL, "data:") {
		mimeType, data, err := domain.DecodeDataURI(rawURL)
		if err != nil {
			slog.Warn("ロゴのdata URIを分解できませんでした", "error", err)
			return "", nil, false
		}
		return mimeType, data, true
	}

	if cached, found := f.cache.Get(rawURL); found {
		logo := cached.(cachedLogo)
		return logo.mimeType, logo.data, true
	}

	mimeType, data, ok := f.download(ctx, rawURL)
	if !ok {
		return "", nil, false
	}

	f.cache.Set(rawURL, cachedLogo{mimeType: mimeType, data: data}, cache.DefaultExpiration)
	return mimeType, data, true
}

// FetchDataURI は Fetch の結果を data URI 形式で返すヘルパーです。
// 失敗時は空文字列（ロゴなし）を返します。
func (f *LogoFetcher) FetchDataURI(ctx context.Context, rawURL string) string {
	if strings.HasPrefix(strings.TrimSpace(rawURL), "data:") {
		return strings.TrimSpace(rawURL)
	}
	mimeType, data, ok := f.Fetch(ctx, rawURL)
	if !ok {
		return ""
	}
	return domain.BuildDataURI(mimeType, data)
}

func (f *LogoFetcher) download(ctx context.Context, rawURL string) (string, []byte, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		slog.Warn("ロゴURLのリクエスト生成に失敗しました", "url", rawURL, "error", err)
		return "", nil, false
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		slog.Warn("ロゴの取得に失敗しました。ロゴなしで続行します", "url", rawURL, "error", err)
		return "", nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Warn("ロゴの取得が想定外のステータスでした", "url", rawURL, "status", resp.StatusCode)
		return "", nil, false
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
	if err != nil || len(data) == 0 {
		slog.Warn("ロゴ本文の読み取りに失敗しました", "url", rawURL, "error", err)
		return "", nil, false
	}

	mimeType := resp.Header.Get("Content-Type")
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	if !strings.HasPrefix(mimeType, "image/") {
		// Content-Type が信用できない場合はバイト列から推定する
		mimeType = http.DetectContentType(data)
		if !strings.HasPrefix(mimeType, "image/") {
			slog.Warn("ロゴURLの応答が画像ではありませんでした", "url", rawURL, "content_type", mimeType)
			return "", nil, false
		}
	}

	return mimeType, data, true
}
