package parser

import "regexp"

var (
	// fencedMarkerRegex は ```json / ``` のフェンス記号そのものを除去します。
	fencedMarkerRegex = regexp.MustCompile("```(?:json)?\\s*")

	// titlesArrayRegex は "titles": [...] の角括弧の中身をキャプチャします。
	titlesArrayRegex = regexp.MustCompile(`(?s)"titles":\s*\[(.*?)\]`)

	// descriptionRegex は "description": "..." の値をキャプチャします。
	descriptionRegex = regexp.MustCompile(`"description":\s*"([^"]+)"`)

	// hashtagsArrayRegex は "hashtags": [...] の角括弧の中身をキャプチャします。
	hashtagsArrayRegex = regexp.MustCompile(`(?s)"hashtags":\s*\[(.*?)\]`)

	// quotedStringRegex は角括弧の中身から引用符付き文字列を個別に取り出します。
	quotedStringRegex = regexp.MustCompile(`"([^"]+)"`)

	// listItemRegex は "1. タイトル" や "- タイトル" 形式の箇条書き行に一致します（レガシー形式用）。
	listItemRegex = regexp.MustCompile(`^[\d\-*]`)
)
