package utils

import (
	"strings"

	"golang.org/x/net/html"
)

// StripTags flattens an HTML fragment to its text content with whitespace
// collapsed. Scraped description fields must carry no markup downstream.
func StripTags(fragment string) string {
	if fragment == "" {
		return ""
	}
	if !strings.ContainsAny(fragment, "<&") {
		return strings.Join(strings.Fields(fragment), " ")
	}

	var b strings.Builder
	tok := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := tok.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.WriteString(tok.Token().Data)
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
