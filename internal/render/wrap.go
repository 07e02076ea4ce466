package render

import (
	"strings"
	"unicode"
)

// LineBreak separates wrapped segments inside a table cell.
const LineBreak = "<br>"

// WrapText breaks text into segments of at most width runes joined by
// LineBreak. Each cut is placed after the last whitespace rune that still
// fits; a run without whitespace is split at exactly width. Removing every
// LineBreak from the result yields text again. A width below 1 disables
// wrapping.
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	rest := []rune(text)
	var segments []string
	for len(rest) > width {
		cut := width
		for i := width - 1; i >= 0; i-- {
			if unicode.IsSpace(rest[i]) {
				cut = i + 1
				break
			}
		}
		segments = append(segments, string(rest[:cut]))
		rest = rest[cut:]
	}
	segments = append(segments, string(rest))

	return strings.Join(segments, LineBreak)
}
