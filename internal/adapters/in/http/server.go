package http

import (
	"context"
	"log/slog"
	"net/http"

	"cardapio/internal/core/application/notify"
	"cardapio/internal/core/application/usecases/commands"
	"cardapio/internal/core/application/usecases/queries"
	"cardapio/internal/core/application/views"
	"cardapio/internal/core/domain/model/kernel"
	"cardapio/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Use case contracts consumed by the server. The command and query handlers
// satisfy them directly.
type (
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	OrderStatusUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
	}

	StreamOpener interface {
		Handle(ctx context.Context, cmd commands.OpenStreamCommand) (*notify.Subscriber, error)
		Release(ctx context.Context, sub *notify.Subscriber)
	}

	OrderGetter interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (views.OrderView, error)
	}

	OrdersByStatusLister interface {
		Handle(ctx context.Context, query queries.GetOrdersByStatusQuery) ([]views.OrderView, error)
	}

	OrdersByTableLister interface {
		Handle(ctx context.Context, query queries.GetOrdersByTableQuery) ([]views.OrderView, error)
	}
)

// Server implements the order API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  OrderCreator
	updateStatusHandler OrderStatusUpdater
	openStreamHandler   StreamOpener

	// Query handlers
	getOrderHandler    OrderGetter
	getByStatusHandler OrdersByStatusLister
	getByTableHandler  OrdersByTableLister

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler OrderCreator,
	updateStatusHandler OrderStatusUpdater,
	openStreamHandler StreamOpener,
	getOrderHandler OrderGetter,
	getByStatusHandler OrdersByStatusLister,
	getByTableHandler OrdersByTableLister,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		updateStatusHandler: updateStatusHandler,
		openStreamHandler:   openStreamHandler,
		getOrderHandler:     getOrderHandler,
		getByStatusHandler:  getByStatusHandler,
		getByTableHandler:   getByTableHandler,
		logger:              logger.With("component", "http_server"),
	}
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines := make([]commands.CreateOrderLine, len(body.Lines))
	for i, l := range body.Lines {
		itemID, err := kernel.UUIDFromGoogle(l.MenuItemID)
		if err != nil {
			return s.fail(ctx, err)
		}
		lines[i] = commands.CreateOrderLine{MenuItemID: itemID, Quantity: l.Quantity, Notes: l.Notes}
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), body.Table, lines, body.Notes)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, views.FromOrder(o))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context, id uuid.UUID) error {
	orderID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// GetOrdersByTable handles GET /api/v1/orders/table/:table - newest first.
func (s *Server) GetOrdersByTable(ctx echo.Context, table string) error {
	query, err := queries.NewGetOrdersByTableQuery(table)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.getByTableHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetReceivedOrders handles GET /api/v1/kitchen/orders/received.
func (s *Server) GetReceivedOrders(ctx echo.Context) error {
	return s.listByStatus(ctx, order.Received)
}

// GetInPreparationOrders handles GET /api/v1/kitchen/orders/in-preparation.
func (s *Server) GetInPreparationOrders(ctx echo.Context) error {
	return s.listByStatus(ctx, order.InPreparation)
}

// GetReadyOrders handles GET /api/v1/waiter/orders/ready.
func (s *Server) GetReadyOrders(ctx echo.Context) error {
	return s.listByStatus(ctx, order.Ready)
}

// UpdateOrderStatus handles PATCH /api/v1/kitchen/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id uuid.UUID) error {
	var body StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.changeStatus(ctx, id, status)
}

// StartPreparation handles PATCH /api/v1/kitchen/orders/:id/start-preparation.
func (s *Server) StartPreparation(ctx echo.Context, id uuid.UUID) error {
	return s.changeStatus(ctx, id, order.InPreparation)
}

// FinishOrder handles PATCH /api/v1/kitchen/orders/:id/finish.
func (s *Server) FinishOrder(ctx echo.Context, id uuid.UUID) error {
	return s.changeStatus(ctx, id, order.Ready)
}

// DeliverOrder handles PATCH /api/v1/waiter/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context, id uuid.UUID) error {
	return s.changeStatus(ctx, id, order.Delivered)
}

// OpenKitchenStream handles GET /api/v1/kitchen/orders/stream.
func (s *Server) OpenKitchenStream(ctx echo.Context) error {
	return s.stream(ctx, notify.Kitchen)
}

// OpenWaiterStream handles GET /api/v1/waiter/orders/stream.
func (s *Server) OpenWaiterStream(ctx echo.Context) error {
	return s.stream(ctx, notify.Waiter)
}

func (s *Server) listByStatus(ctx echo.Context, status order.Status) error {
	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.getByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

func (s *Server) changeStatus(ctx echo.Context, id uuid.UUID, status order.Status) error {
	orderID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views.FromOrder(o))
}
