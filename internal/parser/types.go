// Package parser turns free-form WhatsApp order messages (Portuguese,
// typos and all) into structured orders matched against a product catalog.
package parser

import (
	"time"

	"github.com/duartefontes/pedidozap/internal/catalog"
)

// OrderItem is one recognized line of the message, priced from the
// matched catalog product.
type OrderItem struct {
	ID         string          `json:"id"`
	Product    catalog.Product `json:"product"`
	Quantity   float64         `json:"quantity"`
	UnitPrice  float64         `json:"unitPrice"`
	TotalPrice float64         `json:"totalPrice"`
}

// Order is the structured result of parsing one message. Items preserve
// line order. ScheduledTime and ClientName are nil/empty when the message
// never mentions them; Notes collects every line no classifier claimed.
type Order struct {
	Items         []OrderItem `json:"items"`
	ScheduledTime *time.Time  `json:"scheduledTime,omitempty"`
	ClientName    string      `json:"clientName,omitempty"`
	Notes         string      `json:"notes"`
}

// Total sums the item totals.
func (o Order) Total() float64 {
	total := 0.0
	for _, item := range o.Items {
		total += item.TotalPrice
	}
	return total
}
