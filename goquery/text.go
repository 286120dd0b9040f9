// Package goquery provides HTML-based implementations of link discovery
// and pattern address extraction using CSS selectors.
package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// skipElements are elements whose text is never user-visible.
var skipElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// VisibleText returns the visible text of an HTML document as a single
// whitespace-joined string. Script, style, and template contents are
// skipped; all other text nodes contribute their trimmed text in document
// order.
func VisibleText(rawHTML string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(rawHTML))

	var sb strings.Builder
	var skipDepth int

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if skipElements[string(name)] {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if skipElements[string(name)] && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			text := strings.TrimSpace(string(tokenizer.Text()))
			if text == "" {
				continue
			}
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strings.Join(strings.Fields(text), " "))
		}
	}
}
