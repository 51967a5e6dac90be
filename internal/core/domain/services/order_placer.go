package services

import (
	"errors"
	"fmt"
	"time"

	"cardapio/internal/core/domain/model/kernel"
	"cardapio/internal/core/domain/model/menu"
	"cardapio/internal/core/domain/model/order"
	"cardapio/internal/pkg/errs"
)

// ResolvedLine is a requested line whose menu item has already been looked up.
type ResolvedLine struct {
	Item     menu.Item
	Quantity int
	Notes    string
}

// OrderPlacer is a domain service that builds a new order from menu items.
//
// Business rules:
//   - Every item must be enabled at placement time
//   - Line name and unit price are copied from the item, so later menu edits
//     never change a placed order
//   - Line order follows the request order
//
// Example usage:
//
//	placer := services.NewOrderPlacer()
//	o, err := placer.Place(kernel.NewUUID(), &table, "", resolved, time.Now())
//	if errors.Is(err, errs.ErrObjectIsUnavailable) {
//	    // one of the items was switched off
//	}
type OrderPlacer struct{}

func NewOrderPlacer() OrderPlacer {
	return OrderPlacer{}
}

// Place validates the resolved lines and returns a new order in Received status.
func (p OrderPlacer) Place(
	id kernel.UUID,
	table *string,
	notes string,
	resolved []ResolvedLine,
	now time.Time,
) (*order.Order, error) {
	if len(resolved) == 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause("lines", errors.New("order must have at least one line"))
	}

	lines := make([]order.Line, 0, len(resolved))
	for i, r := range resolved {
		if err := r.Item.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		if !r.Item.IsEnabled() {
			return nil, errs.NewObjectIsUnavailableError("menu item", r.Item.ID())
		}

		line, err := order.NewLine(r.Item.ID(), r.Item.Name(), r.Item.Price(), r.Quantity, r.Notes)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		lines = append(lines, line)
	}

	return order.NewOrder(id, table, lines, notes, now)
}
