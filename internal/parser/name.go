package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/duartefontes/pedidozap/internal/normalize"
)

// Introductory phrases customers actually use. Ordered; the first pattern
// that yields an acceptable name wins.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:oi|ol[aá])[\s,]+sou\s+[ao]\s+([a-zçáàâãéêíóôõúü]{2,})`),
	regexp.MustCompile(`(?i)\bsou\s+[ao]\s+([a-zçáàâãéêíóôõúü]{2,})`),
	regexp.MustCompile(`(?i)\baqui\s+[eé]\s+[ao]\s+([a-zçáàâãéêíóôõúü]{2,})`),
	regexp.MustCompile(`(?i)\bmeu\s+nome\s+[eé]\s+([a-zçáàâãéêíóôõúü]{2,})`),
}

// Words a greeting pattern can capture that are never names.
var notNames = map[string]struct{}{
	"quero":    {},
	"gostaria": {},
	"preciso":  {},
	"oi":       {},
	"ola":      {},
	"bom":      {},
	"boa":      {},
	"queria":   {},
}

// extractClientName tries to read a customer name from one message line.
func extractClientName(line string) (string, bool) {
	for _, pattern := range namePatterns {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := m[1]
		if len([]rune(name)) < 2 {
			continue
		}
		key := normalize.StripAccents(strings.ToLower(name))
		if _, excluded := notNames[key]; excluded {
			continue
		}
		return capitalize(name), true
	}
	return "", false
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
