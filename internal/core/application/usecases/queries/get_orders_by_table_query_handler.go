package queries

import (
	"context"

	"cardapio/internal/core/application/views"
	"cardapio/internal/core/ports"
)

type GetOrdersByTableQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrdersByTableQueryHandler(reader ports.OrderReader) GetOrdersByTableQueryHandler {
	return GetOrdersByTableQueryHandler{reader: reader}
}

// Handle returns the table's orders ordered by creation time descending.
func (h GetOrdersByTableQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByTableQuery,
) ([]views.OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.GetAllByTable(ctx, query.Table())
	if err != nil {
		return nil, err
	}

	return views.FromOrders(orders), nil
}
