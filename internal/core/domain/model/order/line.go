package order

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"cardapio/internal/core/domain/model/kernel"
	"cardapio/internal/pkg/errs"
	"cardapio/internal/pkg/guard"
)

// MaxLineNotesLength is the longest kitchen note a single line may carry, in characters.
const MaxLineNotesLength = 200

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one entry of an order: a snapshot of a menu item taken when the order
// was placed, the requested quantity and optional kitchen notes. Later menu price
// changes never affect a placed line.
type Line struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	name       string
	unitPrice  kernel.Money
	quantity   int
	notes      string
	guard      guard.ConstructorGuard
}

// NewLine creates a validated line. unitPrice must be positive and quantity at least 1.
func NewLine(menuItemID kernel.UUID, name string, unitPrice kernel.Money, quantity int, notes string) (Line, error) {
	line := Line{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		line.setMenuItemID(menuItemID),
		line.setName(name),
		line.setUnitPrice(unitPrice),
		line.setQuantity(quantity),
		line.setNotes(notes),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

func (l Line) Name() string {
	return l.name
}

func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) Notes() string {
	return l.notes
}

// Subtotal is quantity times unit price.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.Multiply(l.quantity)
}

// ChangeQuantity replaces the quantity after validating it.
func (l *Line) ChangeQuantity(quantity int) error {
	return l.setQuantity(quantity)
}

func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l *Line) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.menuItemID = id
	return nil
}

func (l *Line) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *Line) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%s is not greater than 0", price))
	}
	l.unitPrice = price
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setNotes(notes string) error {
	if n := utf8.RuneCountInString(notes); n > MaxLineNotesLength {
		return errs.NewValueIsOutOfRangeError("line notes length", n, 0, MaxLineNotesLength)
	}
	l.notes = notes
	return nil
}
