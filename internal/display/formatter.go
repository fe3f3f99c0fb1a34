// Package display renders parsed orders and catalogs for the terminal.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/duartefontes/pedidozap/internal/catalog"
	"github.com/duartefontes/pedidozap/internal/parser"
)

// Styles for terminal output.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	priceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	qtyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	dimStyle     = lipgloss.NewStyle().Faint(true)
	cyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// PrintOrder renders a parsed order to the writer.
func PrintOrder(w io.Writer, order parser.Order) {
	fmt.Fprintf(w, "\n%s — %s\n\n",
		headerStyle.Render("Pedido"),
		cyanStyle.Render(fmt.Sprintf("%d item(ns)", len(order.Items))),
	)

	if order.ClientName != "" {
		fmt.Fprintf(w, "  Cliente: %s\n", titleStyle.Render(order.ClientName))
	}
	if order.ScheduledTime != nil {
		fmt.Fprintf(w, "  Horário: %s\n", titleStyle.Render(order.ScheduledTime.Format("15:04")))
	}
	if order.ClientName != "" || order.ScheduledTime != nil {
		fmt.Fprintln(w)
	}

	for _, item := range order.Items {
		fmt.Fprintf(w, "  %s %s  %s\n",
			qtyStyle.Render(FormatQuantity(item.Quantity)+"x"),
			titleStyle.Render(item.Product.Name),
			priceStyle.Render(FormatPrice(item.TotalPrice)),
		)
		fmt.Fprintf(w, "     %s\n", dimStyle.Render(FormatPrice(item.UnitPrice)+" cada"))
	}

	if len(order.Items) > 0 {
		fmt.Fprintf(w, "\n  Total: %s\n", priceStyle.Render(FormatPrice(order.Total())))
	}

	if order.Notes != "" {
		fmt.Fprintf(w, "\n  Observações:\n")
		for _, line := range strings.Split(order.Notes, "\n") {
			fmt.Fprintf(w, "    %s\n", dimStyle.Render(line))
		}
	}
	fmt.Fprintln(w)
}

// PrintOrderJSON renders a parsed order as JSON.
func PrintOrderJSON(w io.Writer, order parser.Order) error {
	if order.Items == nil {
		order.Items = []parser.OrderItem{}
	}
	return json.NewEncoder(w).Encode(order)
}

// PrintCatalog renders the product list to the writer.
func PrintCatalog(w io.Writer, products []catalog.Product) {
	fmt.Fprintf(w, "\n%s — %s\n\n",
		headerStyle.Render("Catálogo"),
		cyanStyle.Render(fmt.Sprintf("%d produto(s)", len(products))),
	)
	for _, p := range products {
		fmt.Fprintf(w, "  %s  %s  %s\n",
			cyanStyle.Render("#"+p.ID),
			titleStyle.Render(p.Name),
			priceStyle.Render(FormatPrice(p.UnitPrice)),
		)
	}
	fmt.Fprintln(w)
}

// PrintCatalogJSON renders the product list as JSON.
func PrintCatalogJSON(w io.Writer, products []catalog.Product) error {
	return json.NewEncoder(w).Encode(catalog.File{Products: products})
}

// PrintError prints a styled error message.
func PrintError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(msg))
}

// PrintWarning prints a styled warning message.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warningStyle.Render(msg))
}

// FormatPrice renders a price in Brazilian convention ("R$ 45,00").
func FormatPrice(v float64) string {
	return "R$ " + strings.ReplaceAll(fmt.Sprintf("%.2f", v), ".", ",")
}

// FormatQuantity drops the decimals of whole quantities ("2" not "2.0");
// fractional quantities keep a comma separator ("0,5").
func FormatQuantity(q float64) string {
	if q == float64(int64(q)) {
		return fmt.Sprintf("%d", int64(q))
	}
	return strings.ReplaceAll(fmt.Sprintf("%g", q), ".", ",")
}
