// Package match finds catalog products for free-text Portuguese queries
// using exact, substring and edit-distance strategies.
package match

import (
	"strings"

	"github.com/duartefontes/pedidozap/internal/catalog"
	"github.com/duartefontes/pedidozap/internal/logger"
	"github.com/duartefontes/pedidozap/internal/normalize"
)

// DefaultMaxDistance caps the edit-distance tolerance for long queries.
const DefaultMaxDistance = 2

// fuzzyRatio keeps the tolerance proportional to query length so short
// queries are matched strictly.
const fuzzyRatio = 0.3

// FindBestMatch returns the catalog product best matching the query, or
// nil when nothing qualifies.
//
// The first product whose normalized name equals the normalized query, or
// where one is a substring of the other, wins immediately; catalog order
// is the tie-break. Otherwise every product is scored by edit distance
// (against the full name and against each name word of length >= 3) and
// the smallest distance within the threshold wins.
func FindBestMatch(query string, products []catalog.Product, maxDistance int) *catalog.Product {
	normQuery := normalize.Normalize(query)
	if normQuery == "" {
		return nil
	}

	threshold := maxDistance
	if byLength := int(float64(len(normQuery)) * fuzzyRatio); byLength < threshold {
		threshold = byLength
	}

	var best *catalog.Product
	bestDist := threshold + 1

	for i := range products {
		p := &products[i]
		normName := normalize.Normalize(p.Name)

		if normName == normQuery ||
			strings.Contains(normQuery, normName) ||
			strings.Contains(normName, normQuery) {
			logger.Debug("match: %q -> %q (direct)", query, p.Name)
			return p
		}

		if d := Levenshtein(normQuery, normName); d <= threshold && d < bestDist {
			best = p
			bestDist = d
		}

		// A query naming one significant word of a multi-word product
		// ("galinha" for "Galinha Caipira") still counts.
		for _, word := range strings.Fields(normName) {
			if len(word) < 3 {
				continue
			}
			if d := Levenshtein(normQuery, word); d <= threshold && d < bestDist {
				best = p
				bestDist = d
			}
		}
	}

	if best != nil {
		logger.Debug("match: %q -> %q (distance %d)", query, best.Name, bestDist)
	}
	return best
}
