package parser

import (
	"strings"

	"github.com/duartefontes/pedidozap/internal/catalog"
	"github.com/duartefontes/pedidozap/internal/logger"
)

// Parse extracts a structured order from a raw WhatsApp message.
//
// Each non-blank line is classified with fixed precedence: client name,
// then scheduled time, then item. Name and time are captured at most once
// per message; later matching lines fall through to the next classifier.
// Lines nothing claims are kept verbatim in Notes. Parse never fails: a
// message with no recognizable structure comes back as an empty order
// whose Notes hold the whole text.
func Parse(text string, products []catalog.Product) Order {
	var order Order
	var noteLines []string

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if order.ClientName == "" {
			if name, ok := extractClientName(line); ok {
				logger.Debug("parse: client name %q from %q", name, line)
				order.ClientName = name
				continue
			}
		}

		if order.ScheduledTime == nil {
			if at, ok := extractScheduledTime(line); ok {
				logger.Debug("parse: scheduled time %s from %q", at.Format("15:04"), line)
				order.ScheduledTime = &at
				continue
			}
		}

		if item, ok := extractItem(line, products); ok {
			logger.Debug("parse: item %gx %q from %q", item.Quantity, item.Product.Name, line)
			order.Items = append(order.Items, item)
			continue
		}

		noteLines = append(noteLines, rawLine)
	}

	order.Notes = strings.TrimSpace(strings.Join(noteLines, "\n"))
	return order
}
