// Package menu holds the read-only view of a menu item that the order service
// needs when placing an order. Menu maintenance lives elsewhere.
package menu

import (
	"errors"
	"fmt"

	"cardapio/internal/core/domain/model/kernel"
	"cardapio/internal/pkg/errs"
	"cardapio/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a menu entry as seen at the moment an order is placed.
type Item struct {
	id      kernel.UUID
	name    string
	price   kernel.Money
	enabled bool
	guard   guard.ConstructorGuard
}

// NewItem creates a validated menu item. Disabled items are valid but cannot be ordered.
func NewItem(id kernel.UUID, name string, price kernel.Money, enabled bool) (Item, error) {
	var nameErr, priceErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err := price.Validate(); err != nil {
		priceErr = err
	} else if !price.IsPositive() {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is not greater than 0", price))
	}

	if err := errors.Join(id.Validate(), nameErr, priceErr); err != nil {
		return Item{}, err
	}

	return Item{
		id:      id,
		name:    name,
		price:   price,
		enabled: enabled,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (i Item) ID() kernel.UUID {
	return i.id
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Price() kernel.Money {
	return i.price
}

func (i Item) IsEnabled() bool {
	return i.enabled
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}
