package parser

import "strings"

// salvageSections は、初代実装が返していたラベル付きプレーンテキスト形式
// （"Titles:" / "Description:" / "Hashtags:" の見出しに続く箇条書き）からの
// 最終サルベージです。JSONでも正規表現でも拾えなかった場合にのみ呼ばれます。
func (p *Parser) salvageSections(text string) ([]string, string, []string) {
	var titles, hashtags []string
	var descParts []string

	section := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.Contains(line, "Titles:") || strings.Contains(line, "Title:"):
			section = "titles"
			label := "Titles:"
			if !strings.Contains(line, label) {
				label = "Title:"
			}
			rest := strings.TrimSpace(line[strings.Index(line, label)+len(label):])
			if title := cleanListItem(rest); title != "" {
				titles = append(titles, title)
			}
			continue

		case strings.Contains(line, "Description:"):
			section = "description"
			rest := strings.TrimSpace(line[strings.Index(line, "Description:")+len("Description:"):])
			if rest != "" {
				descParts = append(descParts, rest)
			}
			continue

		case strings.Contains(line, "Hashtags:"):
			section = "hashtags"
			rest := strings.TrimSpace(line[strings.Index(line, "Hashtags:")+len("Hashtags:"):])
			hashtags = append(hashtags, splitTags(rest)...)
			continue
		}

		switch section {
		case "titles":
			if listItemRegex.MatchString(line) {
				if title := cleanListItem(line); title != "" {
					titles = append(titles, title)
				}
			}
		case "description":
			descParts = append(descParts, line)
		case "hashtags":
			hashtags = append(hashtags, splitTags(line)...)
		}
	}

	titles = capStrings(titles, p.mode.TitleCount())
	hashtags = normalizeHashtags(hashtags, p.mode.HashtagCount())
	return titles, strings.Join(descParts, " "), hashtags
}

// cleanListItem は箇条書き行から番号・記号のプレフィックスを取り除きます。
func cleanListItem(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "0123456789-*. "))
}

func splitTags(line string) []string {
	var tags []string
	for _, token := range strings.Fields(line) {
		if token != "" {
			tags = append(tags, token)
		}
	}
	return tags
}
