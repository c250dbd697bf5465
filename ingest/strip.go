package ingest

import (
	"html"
	"strings"
)

// stripHTML removes markup from course content: tags are dropped, entities
// decoded, and runs of whitespace collapsed. Malformed markup degrades
// gracefully; an unclosed tag swallows the rest of the string.
func stripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}

	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case inTag:
			if r == '>' {
				inTag = false
				b.WriteByte(' ')
			}
		case r == '<':
			inTag = true
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(html.UnescapeString(b.String())), " ")
}
