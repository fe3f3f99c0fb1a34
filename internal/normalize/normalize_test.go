package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duartefontes/pedidozap/internal/normalize"
)

func TestStripAccents(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"maçã", "maca"},
		{"pão", "pao"},
		{"café", "cafe"},
		{"açúcar", "acucar"},
		{"já normalizado", "ja normalizado"},
		{"sem acento", "sem acento"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalize.StripAccents(tt.input), "StripAccents(%q)", tt.input)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Frango Assado", "frango assado"},
		{"  Farofa  ", "farofa"},
		{"limões", "limao"},
		{"pães", "pao"},
		{"papéis", "papel"},
		{"frangos", "frango"},
		{"saladas", "salada"},
		{"batatas", "batata"},
		{"Galinha Caipira", "galinha caipira"},
		{"MAÇÃS", "maca"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalize.Normalize(tt.input), "Normalize(%q)", tt.input)
	}
}

func TestNormalize_AtMostOnePluralRule(t *testing.T) {
	// "limões" singularizes via the "oes" rule only; the result must not
	// lose its final "o" to the generic "s" rule.
	assert.Equal(t, "limao", normalize.Normalize("limões"))
	assert.Equal(t, "pao", normalize.Normalize("pães"))
}

func TestNormalize_ShortWordsKeepTrailingS(t *testing.T) {
	assert.Equal(t, "as", normalize.Normalize("as"))
	assert.Equal(t, "os", normalize.Normalize("os"))
}

func TestNormalize_PracticalIdempotence(t *testing.T) {
	words := []string{"frangos", "saladas", "limões", "pães", "papéis", "farofa"}
	for _, w := range words {
		once := normalize.Normalize(w)
		assert.Equal(t, once, normalize.Normalize(once), "re-normalizing %q", w)
	}
}
