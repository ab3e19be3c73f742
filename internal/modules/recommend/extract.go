package recommend

import (
	"regexp"
	"strings"
)

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// ExtractTextContent flattens an item into a single lowercase text blob:
// title, excerpt, then the body rendered according to its shape. A nil body
// contributes nothing; the result is never an error.
func ExtractTextContent(item ContentItem) string {
	parts := make([]string, 0, 4)
	if item.Title != "" {
		parts = append(parts, item.Title)
	}
	if item.Excerpt != "" {
		parts = append(parts, item.Excerpt)
	}

	switch body := item.Content.(type) {
	case HTMLContent:
		parts = append(parts, stripHTML(string(body)))
	case SectionContent:
		for _, s := range body {
			if s.Text != "" {
				parts = append(parts, s.Text)
			}
			if s.Content != "" {
				parts = append(parts, s.Content)
			}
		}
	case StructuredContent:
		if body.Title != "" {
			parts = append(parts, body.Title)
		}
		if body.Description != "" {
			parts = append(parts, body.Description)
		}
		if body.Body != "" {
			parts = append(parts, body.Body)
		}
	case nil:
	}

	text := collapseWhitespace(strings.Join(parts, " "))
	return strings.ToLower(strings.TrimSpace(text))
}

func stripHTML(s string) string {
	return htmlTagPattern.ReplaceAllString(s, " ")
}

func collapseWhitespace(s string) string {
	return whitespacePattern.ReplaceAllString(s, " ")
}
