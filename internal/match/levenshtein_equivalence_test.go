package match_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duartefontes/pedidozap/internal/match"
)

// referenceLevenshtein is the textbook full-matrix formulation, kept as a
// cross-check for the two-row version.
func referenceLevenshtein(a, b string) int {
	rows := len(a) + 1
	cols := len(b) + 1

	matrix := make([][]int, rows)
	for i := range matrix {
		matrix[i] = make([]int, cols)
		matrix[i][0] = i
	}
	for j := 0; j < cols; j++ {
		matrix[0][j] = j
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			deletion := matrix[i-1][j] + 1
			insertion := matrix[i][j-1] + 1
			substitution := matrix[i-1][j-1] + cost
			best := deletion
			if insertion < best {
				best = insertion
			}
			if substitution < best {
				best = substitution
			}
			matrix[i][j] = best
		}
	}
	return matrix[rows-1][cols-1]
}

func randomWord(rng *rand.Rand, maxLen int) string {
	const alphabet = "abcdefghijlmnoprstuvxz"
	n := rng.Intn(maxLen + 1)
	word := make([]byte, n)
	for i := range word {
		word[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(word)
}

func TestLevenshtein_ReferenceEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for caseNum := 0; caseNum < 500; caseNum++ {
		a := randomWord(rng, 20)
		b := randomWord(rng, 20)

		got := match.Levenshtein(a, b)
		want := referenceLevenshtein(a, b)

		assert.Equal(t, want, got, "mismatch for a=%q b=%q case=%d", a, b, caseNum)
	}
}

func TestLevenshtein_AllocationBudget(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = match.Levenshtein("galinha caipira", "galinha caipirra")
	})

	// Guardrail for accidental reintroduction of the full matrix.
	assert.LessOrEqual(t, allocs, 4.0)
}

func BenchmarkLevenshtein_TwoRow(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = match.Levenshtein("salada de maionese", "salda de mayonese")
	}
}

func BenchmarkLevenshtein_FullMatrix(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = referenceLevenshtein("salada de maionese", "salda de mayonese")
	}
}
