package queries

import (
	"context"

	"cardapio/internal/core/application/views"
	"cardapio/internal/core/ports"
)

type GetOrdersByStatusQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrdersByStatusQueryHandler(reader ports.OrderReader) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{reader: reader}
}

// Handle returns the matching orders ordered by creation time ascending.
// No match is an empty list, not an error.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]views.OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.GetAllByStatus(ctx, query.Status())
	if err != nil {
		return nil, err
	}

	return views.FromOrders(orders), nil
}
