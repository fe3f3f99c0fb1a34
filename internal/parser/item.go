package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/duartefontes/pedidozap/internal/catalog"
	"github.com/duartefontes/pedidozap/internal/match"
)

// Spelled-out quantities customers type instead of digits.
var quantityWords = map[string]float64{
	"meia":   0.5,
	"metade": 0.5,
	"meio":   0.5,
	"um":     1,
	"uma":    1,
	"dois":   2,
	"duas":   2,
	"tres":   3,
	"três":   3,
	"quatro": 4,
	"cinco":  5,
	"seis":   6,
	"sete":   7,
	"oito":   8,
	"nove":   9,
	"dez":    10,
}

var (
	wordQuantityPattern = regexp.MustCompile(
		`(?i)^(meia|metade|meio|uma|um|duas|dois|tr[eê]s|quatro|cinco|seis|sete|oito|nove|dez)\s+(.+)$`)
	numericQuantityPattern = regexp.MustCompile(
		`(?i)^(\d+(?:[.,]\d+)?)\s*(?:(?:x|kg|g|un|unidades?)\s+)?(.+)$`)
)

// extractItem tries to read one message line as "quantity + product".
// The line is declined (ok=false) when no catalog product matches the
// product-name text, so the orchestrator can demote it to notes.
func extractItem(line string, products []catalog.Product) (OrderItem, bool) {
	quantity := 1.0
	nameText := line

	if m := wordQuantityPattern.FindStringSubmatch(line); m != nil {
		if q, known := quantityWords[strings.ToLower(m[1])]; known {
			quantity = q
			nameText = m[2]
		}
	} else if m := numericQuantityPattern.FindStringSubmatch(line); m != nil {
		quantity = parseQuantity(m[1])
		nameText = m[2]
	}

	product := match.FindBestMatch(strings.TrimSpace(nameText), products, match.DefaultMaxDistance)
	if product == nil {
		return OrderItem{}, false
	}

	return OrderItem{
		ID:         uuid.NewString(),
		Product:    *product,
		Quantity:   quantity,
		UnitPrice:  product.UnitPrice,
		TotalPrice: product.UnitPrice * quantity,
	}, true
}

// parseQuantity reads a decimal with either separator ("1,5" or "1.5"),
// defaulting to 1 when unparseable.
func parseQuantity(raw string) float64 {
	q, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 1
	}
	return q
}
