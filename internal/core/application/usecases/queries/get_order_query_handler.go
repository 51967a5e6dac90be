package queries

import (
	"context"

	"cardapio/internal/core/application/views"
	"cardapio/internal/core/ports"
)

// GetOrderQueryHandler returns the full view of one order.
type GetOrderQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrderQueryHandler(reader ports.OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (views.OrderView, error) {
	if err := query.Validate(); err != nil {
		return views.OrderView{}, err
	}

	o, err := h.reader.Get(ctx, query.OrderID())
	if err != nil {
		return views.OrderView{}, err
	}

	return views.FromOrder(o), nil
}
