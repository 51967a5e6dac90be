package commands

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"cardapio/internal/core/domain/model/kernel"
	"cardapio/internal/core/domain/model/order"
	"cardapio/internal/pkg/errs"
	"cardapio/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderLine is one requested line: which menu item, how many and any kitchen notes.
type CreateOrderLine struct {
	MenuItemID kernel.UUID
	Quantity   int
	Notes      string
}

// CreateOrderCommand represents a request to place a new order.
// Its constructor checks the structure of the request so malformed input is
// rejected before the menu or the store are touched.
//
// Example:
//
//	table := "12"
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), &table, []CreateOrderLine{
//	    {MenuItemID: burgerID, Quantity: 2, Notes: "sem cebola"},
//	}, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	table   *string
	lines   []CreateOrderLine
	notes   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// table may be nil; a blank label is treated as no table.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	table *string,
	lines []CreateOrderLine,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTable(table),
		cmd.setLines(lines),
		cmd.setNotes(notes),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Table returns the normalized table label, nil when there is none.
func (c CreateOrderCommand) Table() *string {
	return c.table
}

// Lines returns a copy of the requested lines in request order.
func (c CreateOrderCommand) Lines() []CreateOrderLine {
	lines := make([]CreateOrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTable(table *string) error {
	normalized, err := order.NormalizeTable(table)
	if err != nil {
		return err
	}

	c.table = normalized
	return nil
}

func (c *CreateOrderCommand) setLines(lines []CreateOrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("lines", errors.New("order must have at least one line"))
	}

	var lineErrs []error
	for i, line := range lines {
		if err := line.MenuItemID.Validate(); err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("line %d: %w", i, err))
		}
		if line.Quantity < 1 {
			lineErrs = append(lineErrs, fmt.Errorf("line %d: %w", i,
				errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", line.Quantity))))
		}
		if n := utf8.RuneCountInString(line.Notes); n > order.MaxLineNotesLength {
			lineErrs = append(lineErrs, fmt.Errorf("line %d: %w", i,
				errs.NewValueIsOutOfRangeError("line notes length", n, 0, order.MaxLineNotesLength)))
		}
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	c.lines = make([]CreateOrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *CreateOrderCommand) setNotes(notes string) error {
	if err := order.ValidateNotes(notes); err != nil {
		return err
	}

	c.notes = notes
	return nil
}
