package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duartefontes/pedidozap/internal/match"
)

func TestLevenshtein_Identity(t *testing.T) {
	for _, s := range []string{"", "a", "frango", "salada de maionese"} {
		assert.Equal(t, 0, match.Levenshtein(s, s), "Levenshtein(%q, %q)", s, s)
	}
}

func TestLevenshtein_Empty(t *testing.T) {
	assert.Equal(t, 6, match.Levenshtein("", "frango"))
	assert.Equal(t, 6, match.Levenshtein("frango", ""))
}

func TestLevenshtein_KnownDistances(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"farofa", "farrofa", 1},
		{"frango", "franga", 1},
		{"kitten", "sitting", 3},
		{"abc", "xyz", 3},
		{"galinha", "galinha caipira", 8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, match.Levenshtein(tt.a, tt.b), "Levenshtein(%q, %q)", tt.a, tt.b)
	}
}

func TestLevenshtein_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"farofa", "farrofa"},
		{"coxinha", "cozinha"},
		{"", "abc"},
		{"salada", "salgado"},
	}
	for _, p := range pairs {
		assert.Equal(t, match.Levenshtein(p[0], p[1]), match.Levenshtein(p[1], p[0]),
			"symmetry for %q / %q", p[0], p[1])
	}
}
