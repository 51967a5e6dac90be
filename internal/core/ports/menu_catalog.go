// Package ports defines the contracts between the order service core and its
// infrastructure: persistence, the menu collaborator and outbound event publishing.
package ports

import (
	"context"

	"cardapio/internal/core/domain/model/kernel"
	"cardapio/internal/core/domain/model/menu"
)

// MenuCatalog resolves menu items for order placement. It is read-only from the
// point of view of the order service.
type MenuCatalog interface {
	// ResolveItem returns the current state of a menu item.
	// Returns errs.ObjectNotFoundError when the id is unknown. Disabled items are
	// returned as is; the caller decides what to do with them.
	ResolveItem(ctx context.Context, id kernel.UUID) (menu.Item, error)
}
