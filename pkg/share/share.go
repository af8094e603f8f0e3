// Package share はSNSの共有インテントURLの組み立てとクリップボード連携を提供します。
package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/shouni/go-social-kit/pkg/domain"
)

// Target は1プラットフォーム分の共有先を表します。
// URL が空のときはWeb側に共有口がなく、クリップボード経由になります。
type Target struct {
	Platform  string
	URL       string
	Clipboard bool
}

// Text は共有用の本文を組み立てます。先頭タイトル、説明文、
// スペース結合のハッシュタグを空行で区切ります。
func Text(content *domain.GeneratedContent) string {
	if content == nil {
		return ""
	}
	var parts []string
	if len(content.Titles) > 0 && content.Titles[0] != "" {
		parts = append(parts, content.Titles[0])
	}
	if content.Description != "" {
		parts = append(parts, content.Description)
	}
	if len(content.Hashtags) > 0 {
		parts = append(parts, strings.Join(content.Hashtags, " "))
	}
	return strings.Join(parts, "\n\n")
}

// IntentURL は指定プラットフォームの共有インテントURLを返します。
// instagram はWebの共有口を持たないため Clipboard=true の Target を返します。
// 未対応のプラットフォーム名はエラーです。
func IntentURL(platform string, content *domain.GeneratedContent, pageURL string) (Target, error) {
	text := Text(content)
	key := strings.ToLower(strings.TrimSpace(platform))

	switch key {
	case "twitter", "x":
		return Target{Platform: key, URL: "https://twitter.com/intent/tweet?text=" + url.QueryEscape(text)}, nil
	case "facebook":
		v := url.Values{}
		v.Set("u", pageURL)
		v.Set("quote", text)
		return Target{Platform: key, URL: "https://www.facebook.com/sharer/sharer.php?" + v.Encode()}, nil
	case "linkedin":
		return Target{Platform: key, URL: "https://www.linkedin.com/sharing/share-offsite/?url=" + url.QueryEscape(pageURL)}, nil
	case "pinterest":
		v := url.Values{}
		v.Set("url", pageURL)
		v.Set("description", text)
		if content != nil && content.ImageURL != "" && !strings.HasPrefix(content.ImageURL, "data:") {
			v.Set("media", content.ImageURL)
		}
		return Target{Platform: key, URL: "https://pinterest.com/pin/create/button/?" + v.Encode()}, nil
	case "whatsapp":
		return Target{Platform: key, URL: "https://wa.me/?text=" + url.QueryEscape(text)}, nil
	case "telegram":
		v := url.Values{}
		v.Set("url", pageURL)
		v.Set("text", text)
		return Target{Platform: key, URL: "https://t.me/share/url?" + v.Encode()}, nil
	case "instagram":
		return Target{Platform: key, Clipboard: true}, nil
	default:
		return Target{}, fmt.Errorf("%w: 対応していない共有先です: %s", domain.ErrInvalidInput, platform)
	}
}

// CopyText はテキストをクリップボードへ書き込みます。
func CopyText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("クリップボードへの書き込みに失敗しました: %w", err)
	}
	return nil
}

// CopyTitle は指定位置のタイトルをクリップボードへ書き込みます。
func CopyTitle(content *domain.GeneratedContent, index int) error {
	if content == nil || index < 0 || index >= len(content.Titles) {
		return fmt.Errorf("%w: タイトルの位置が範囲外です", domain.ErrInvalidInput)
	}
	return CopyText(content.Titles[index])
}

// CopyDescription は説明文をクリップボードへ書き込みます。
func CopyDescription(content *domain.GeneratedContent) error {
	if content == nil {
		return fmt.Errorf("%w: コンテンツがありません", domain.ErrInvalidInput)
	}
	return CopyText(content.Description)
}

// CopyHashtags はスペース結合のハッシュタグ列をクリップボードへ書き込みます。
func CopyHashtags(content *domain.GeneratedContent) error {
	if content == nil {
		return fmt.Errorf("%w: コンテンツがありません", domain.ErrInvalidInput)
	}
	return CopyText(strings.Join(content.Hashtags, " "))
}
