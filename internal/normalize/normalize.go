// Package normalize canonicalizes Portuguese product and message text for
// comparison: lowercase, accent-free, singular.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripAccents removes diacritical marks ("ã"→"a", "ç"→"c") via NFD
// decomposition followed by removal of combining marks.
func StripAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize lowercases, trims, strips accents and singularizes the text.
// The result is only meant for comparisons, never for display.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = StripAccents(s)
	return singularize(s)
}

// singularize strips one Portuguese plural suffix. At most one rule is
// applied; order matters ("limoes" must become "limao", not "limoe").
func singularize(s string) string {
	switch {
	case strings.HasSuffix(s, "oes"):
		return strings.TrimSuffix(s, "oes") + "ao"
	case strings.HasSuffix(s, "aes"):
		return strings.TrimSuffix(s, "aes") + "ao"
	case strings.HasSuffix(s, "is") && len(s) > 3:
		return strings.TrimSuffix(s, "is") + "l"
	case strings.HasSuffix(s, "es") && len(s) > 3:
		return strings.TrimSuffix(s, "es")
	case strings.HasSuffix(s, "s") && len(s) > 2:
		return strings.TrimSuffix(s, "s")
	}
	return s
}
