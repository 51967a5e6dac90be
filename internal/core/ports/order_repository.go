package ports

import (
	"context"

	"cardapio/internal/core/domain/model/kernel"
	"cardapio/internal/core/domain/model/order"
)

// OrderReader is the read side of the order store, used by queries outside a
// unit of work.
type OrderReader interface {
	// Get retrieves an order with all its lines.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByStatus returns orders in the given status, oldest first.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllByTable returns orders placed for a table label, newest first.
	GetAllByTable(ctx context.Context, table string) ([]*order.Order, error)
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	OrderReader

	// Add persists a new order aggregate together with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a changed order. The stored version must equal
	// aggregate.Version()-1, otherwise errs.VersionIsInvalidError is returned
	// and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error
}
