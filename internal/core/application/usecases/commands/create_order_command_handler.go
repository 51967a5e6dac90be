package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cardapio/internal/core/application/notify"
	"cardapio/internal/core/domain/model/order"
	"cardapio/internal/core/domain/services"
	"cardapio/internal/core/ports"
)

// CreateOrderCommandHandler places a new order.
//
// Steps:
//   - resolves every requested menu item (unknown items fail with NotFound,
//     disabled ones with ItemUnavailable)
//   - builds the order with name and price snapshots
//   - persists it inside a unit of work
//   - after commit, announces it to the kitchen as "novo-pedido"
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog, broadcaster, logger)
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	catalog     ports.MenuCatalog
	broadcaster EventBroadcaster
	placer      services.OrderPlacer
	logger      *slog.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.MenuCatalog,
	broadcaster EventBroadcaster,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		catalog:     catalog,
		broadcaster: broadcaster,
		placer:      services.NewOrderPlacer(),
		logger:      logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order creation command and returns the stored order.
// Nothing is broadcast unless the commit succeeded.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	requested := cmd.Lines()
	resolved := make([]services.ResolvedLine, 0, len(requested))
	for _, line := range requested {
		item, err := h.catalog.ResolveItem(ctx, line.MenuItemID)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, services.ResolvedLine{
			Item:     item,
			Quantity: line.Quantity,
			Notes:    line.Notes,
		})
	}

	o, err := h.placer.Place(cmd.OrderID(), cmd.Table(), cmd.Notes(), resolved, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.announce(ctx, o)
	return o, nil
}

func (h *CreateOrderCommandHandler) announce(ctx context.Context, o *order.Order) {
	ev, err := notify.NewOrderEvent(notify.EventNewOrder, o)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to build event", "order_id", o.ID().String(), "error", err)
		return
	}

	delivered := h.broadcaster.Broadcast(ctx, notify.Kitchen, ev)
	h.logger.DebugContext(ctx, fmt.Sprintf("Announced new order to %d kitchen displays", delivered),
		"order_id", o.ID().String())
}
