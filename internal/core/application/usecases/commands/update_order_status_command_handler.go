package commands

import (
	"context"
	"log/slog"
	"time"

	"cardapio/internal/core/application/notify"
	"cardapio/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler moves an order along its lifecycle.
//
// The order is loaded, transitioned and saved with a version check inside one
// unit of work. When the order becomes READY for the first time the waiters are
// told with "pedido-pronto"; repeating READY does not announce it again.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, broadcaster, logger)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.InPreparation)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrStatusTransitionIsInvalid) {
//	    // skip or backward move
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory  OrderUoWFactory
	broadcaster EventBroadcaster
	logger      *slog.Logger
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	broadcaster EventBroadcaster,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
		logger:      logger.With("component", "update_order_status_handler"),
	}
}

// Handle applies the transition and returns the updated order.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous, err := o.ChangeStatus(cmd.Status(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order status changed",
		"order_id", o.ID().String(), "from", previous.String(), "to", o.Status().String())

	if previous != order.Ready && o.Status() == order.Ready {
		h.announceReady(ctx, o)
	}

	return o, nil
}

func (h *UpdateOrderStatusCommandHandler) announceReady(ctx context.Context, o *order.Order) {
	ev, err := notify.NewOrderEvent(notify.EventOrderReady, o)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to build event", "order_id", o.ID().String(), "error", err)
		return
	}

	h.broadcaster.Broadcast(ctx, notify.Waiter, ev)
}
