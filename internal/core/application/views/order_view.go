// Package views holds the JSON shape of an order shared by HTTP responses,
// stream events and the broker mirror.
package views

import (
	"encoding/json"
	"time"

	"cardapio/internal/core/domain/model/order"
)

// OrderView is the full client-visible representation of an order.
type OrderView struct {
	ID        string      `json:"id"`
	Table     *string     `json:"table"`
	Lines     []LineView  `json:"lines"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Notes     string      `json:"notes"`
	Total     json.Number `json:"total"`
}

type LineView struct {
	MenuItemID string      `json:"menuItemId"`
	Name       string      `json:"name"`
	Quantity   int         `json:"quantity"`
	UnitPrice  json.Number `json:"unitPrice"`
	Notes      string      `json:"notes"`
	Subtotal   json.Number `json:"subtotal"`
}

// FromOrder maps the aggregate to its view. Amounts are rendered with two decimal places.
func FromOrder(o *order.Order) OrderView {
	lines := o.Lines()
	lineViews := make([]LineView, len(lines))
	for i, line := range lines {
		lineViews[i] = LineView{
			MenuItemID: line.MenuItemID().String(),
			Name:       line.Name(),
			Quantity:   line.Quantity(),
			UnitPrice:  json.Number(line.UnitPrice().String()),
			Notes:      line.Notes(),
			Subtotal:   json.Number(line.Subtotal().String()),
		}
	}

	return OrderView{
		ID:        o.ID().String(),
		Table:     o.Table(),
		Lines:     lineViews,
		Status:    o.Status().String(),
		CreatedAt: o.CreatedAt().UTC(),
		UpdatedAt: o.UpdatedAt().UTC(),
		Notes:     o.Notes(),
		Total:     json.Number(o.Total().String()),
	}
}

// FromOrders maps a list, never returning nil so it encodes as [].
func FromOrders(orders []*order.Order) []OrderView {
	result := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		result = append(result, FromOrder(o))
	}
	return result
}
