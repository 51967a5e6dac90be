package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"cardapio/internal/core/domain/model/kernel"
	"cardapio/internal/pkg/errs"
)

const (
	// MaxTableLength is the longest table label accepted, in characters.
	MaxTableLength = 20

	// MaxNotesLength is the longest order-level note accepted, in characters.
	MaxNotesLength = 500
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the service. It owns its lines exclusively and
// guards the lifecycle state machine.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Has at least one line, each line valid on its own
//   - Total is derived from the lines and never stored separately
//   - Status changes only through ChangeStatus
//   - Every accepted change bumps version and refreshes updatedAt
type Order struct {
	id kernel.UUID

	// table is nil for orders not tied to a physical table (counter, takeaway)
	table *string

	// lines keep insertion order, which is the kitchen preparation order
	lines []Line

	status    Status
	notes     string
	createdAt time.Time
	updatedAt time.Time

	// version is the optimistic concurrency counter, 1 for a new order
	version int

	isConstructed bool
}

// NewOrder creates an order in Received status with version 1.
//
// Example:
//
//	line, _ := order.NewLine(itemID, "Hamburguer", price, 2, "sem cebola")
//	o, err := order.NewOrder(kernel.NewUUID(), &table, []order.Line{line}, "", time.Now())
func NewOrder(id kernel.UUID, table *string, lines []Line, notes string, now time.Time) (*Order, error) {
	order := &Order{
		status:        Received,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTable(table),
		order.setLines(lines),
		order.setNotes(notes),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order from persisted state.
func RestoreOrder(
	id kernel.UUID,
	table *string,
	lines []Line,
	notes string,
	status Status,
	createdAt, updatedAt time.Time,
	version int,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	var versionErr error
	if version < 1 {
		versionErr = errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is not greater than 0", version))
	}
	order.version = version

	statusErr := status.Validate()
	order.status = status

	if err := errors.Join(
		order.setID(id),
		order.setTable(table),
		order.setLines(lines),
		order.setNotes(notes),
		statusErr,
		versionErr,
	); err != nil {
		return nil, err
	}

	return order, nil
}

// NormalizeTable trims the label and maps a blank one to nil, then checks its length.
func NormalizeTable(table *string) (*string, error) {
	if table == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*table)
	if trimmed == "" {
		return nil, nil
	}
	if n := utf8.RuneCountInString(trimmed); n > MaxTableLength {
		return nil, errs.NewValueIsOutOfRangeError("table length", n, 0, MaxTableLength)
	}
	return &trimmed, nil
}

// ValidateNotes checks an order-level note against MaxNotesLength.
func ValidateNotes(notes string) error {
	if n := utf8.RuneCountInString(notes); n > MaxNotesLength {
		return errs.NewValueIsOutOfRangeError("notes length", n, 0, MaxNotesLength)
	}
	return nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Table returns a copy of the table label, nil when the order has no table.
func (o *Order) Table() *string {
	if o.table == nil {
		return nil
	}
	t := *o.table
	return &t
}

// Lines returns a copy of the order lines in preparation order.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) Version() int {
	return o.version
}

// Total is the sum of all line subtotals.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range o.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// ChangeStatus moves the order to target and returns the status it had before.
// A repeated target is accepted and still refreshes updatedAt.
//
// Example:
//
//	previous, err := o.ChangeStatus(order.Ready, time.Now())
//	if err == nil && previous != order.Ready {
//	    // first time the order became ready
//	}
func (o *Order) ChangeStatus(target Status, now time.Time) (Status, error) {
	previous := o.status

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return previous, err
	}

	o.status = newStatus
	o.touch(now)
	return previous, nil
}

// ChangeLineQuantity updates the quantity of the line at position (0 based).
// Delivered orders are closed for changes.
func (o *Order) ChangeLineQuantity(position int, quantity int, now time.Time) error {
	if position < 0 || position >= len(o.lines) {
		return errs.NewValueIsOutOfRangeError("line position", position, 0, len(o.lines)-1)
	}
	if o.status.IsFinal() {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s order cannot be changed", o.status))
	}
	if err := o.lines[position].ChangeQuantity(quantity); err != nil {
		return err
	}
	o.touch(now)
	return nil
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now
	o.version++
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTable(table *string) error {
	normalized, err := NormalizeTable(table)
	if err != nil {
		return err
	}
	o.table = normalized
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("lines", errors.New("order must have at least one line"))
	}
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setNotes(notes string) error {
	if err := ValidateNotes(notes); err != nil {
		return err
	}
	o.notes = notes
	return nil
}
