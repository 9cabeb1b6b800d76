package extract

import (
	"strings"
	"unicode/utf8"
)

// MaxExtractLen is the shared per-file cap applied after extraction.
const MaxExtractLen = 4000

// Ellipsis marks a truncated extraction.
const Ellipsis = " …"

// SafeUTF8 ensures the string contains no invalid UTF-8 byte sequences.
// Valid input is returned unchanged; invalid input goes through a lossy
// conversion that drops the offending bytes, and if even that produces
// invalid output the string is stripped down to printable ASCII plus
// whitespace.
func SafeUTF8(text string) string {
	if text == "" {
		return ""
	}

	if utf8.ValidString(text) {
		return text
	}

	converted := strings.ToValidUTF8(text, "")
	if utf8.ValidString(converted) {
		return converted
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\t' || c == '\n' || c == '\r' || (c >= 0x20 && c <= 0x7E) {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Shorten trims the text and cuts it to at most max runes, preferring a word
// boundary when one exists in the last 40% of the window. Truncated output
// ends with the ellipsis marker.
func Shorten(text string, max int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	runes := []rune(text)
	if len(runes) <= max {
		return text
	}

	cut := runes[:max]
	lastSpace := -1
	for i := len(cut) - 1; i >= 0; i-- {
		if cut[i] == ' ' {
			lastSpace = i
			break
		}
	}
	if lastSpace > int(float64(max)*0.6) {
		cut = cut[:lastSpace]
	}
	return string(cut) + Ellipsis
}
