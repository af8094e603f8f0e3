package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultModel        = "gemini-2.0-flash-preview-image-generation"
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultRateInterval = 0 * time.Second // 0 なら待ち時間なしで逐次実行なのだ
	DefaultOutputDir    = "output"
	DefaultProfession   = "Social Media Manager"
)

// Config はアプリケーション全体の環境設定（APIキーやモデル名）を保持する構造体なのだ。
type Config struct {
	GeminiAPIKey string
	GeminiModel  string
	RateInterval time.Duration
	HTTPTimeout  time.Duration

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	cfg := &Config{
		GeminiAPIKey: envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:  envutil.GetEnv("GEMINI_MODEL", DefaultModel),
		RateInterval: getDuration("SOCIAL_RATE_INTERVAL", DefaultRateInterval),
		HTTPTimeout:  getDuration("SOCIAL_HTTP_TIMEOUT", DefaultHTTPTimeout),
	}
	return cfg
}

// getDuration は "30s" 形式の環境変数を読むのだ。不正値はデフォルトに倒すのだ。
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// 単発生成関連
	Profession string // --profession
	Prompt     string // --prompt

	// バッチ生成関連
	InputFile string // --file
	OutputDir string // --output-dir

	// 共有関連
	Platform    string // --platform
	ContentFile string // --content
	PageURL     string // --page-url
	CopyField   string // --copy: titles[:n] / description / hashtags

	// AI挙動設定
	AIModel string // --model: 画像同時生成対応のGeminiモデル

	// 実行制御
	HTTPTimeout time.Duration // --http-timeout
}
