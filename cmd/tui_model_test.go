package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duartefontes/pedidozap/internal/catalog"
	"github.com/duartefontes/pedidozap/internal/parser"
)

func sampleReviewOrder() parser.Order {
	return parser.Order{
		ClientName: "Paula",
		Items: []parser.OrderItem{
			{
				ID:         "item-1",
				Product:    catalog.Product{ID: "1", Name: "Frango Assado", UnitPrice: 45},
				Quantity:   2,
				UnitPrice:  45,
				TotalPrice: 90,
			},
			{
				ID:         "item-2",
				Product:    catalog.Product{ID: "3", Name: "Farofa", UnitPrice: 15},
				Quantity:   0.5,
				UnitPrice:  15,
				TotalPrice: 7.5,
			},
		},
		Notes: "sem pimenta por favor",
	}
}

func TestBuildOrderListEntries(t *testing.T) {
	entries := buildOrderListEntries(sampleReviewOrder())

	assert.Len(t, entries, 2)

	first, ok := entries[0].(orderItemEntry)
	assert.True(t, ok)
	assert.Equal(t, "item-1", first.id)
	assert.Equal(t, "2x Frango Assado", first.title)
	assert.Contains(t, first.description, "R$ 45,00 cada")
	assert.Contains(t, first.description, "R$ 90,00")
	assert.Equal(t, "frango assado", first.FilterValue())

	second, ok := entries[1].(orderItemEntry)
	assert.True(t, ok)
	assert.Equal(t, "0,5x Farofa", second.title)
}

func TestOrderTUIModel_RemoveSelectedItem(t *testing.T) {
	m := newOrderTUIModel(sampleReviewOrder())

	m.removeSelectedItem()

	assert.Len(t, m.order.Items, 1)
	assert.Equal(t, "Farofa", m.order.Items[0].Product.Name)
	assert.Len(t, m.list.Items(), 1)
}

func TestOrderTUIModel_DetailContent(t *testing.T) {
	m := newOrderTUIModel(sampleReviewOrder())

	content := m.detailContent()
	assert.Contains(t, content, "Frango Assado")
	assert.Contains(t, content, "R$ 90,00")

	m.showNotes = true
	content = m.detailContent()
	assert.Contains(t, content, "sem pimenta por favor")
}
