package http

import (
	"cardapio/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// EchoRouter is the subset of echo used to register routes, satisfied by both
// *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// ServerInterfaceWrapper binds path parameters before calling the Server.
type ServerInterfaceWrapper struct {
	Handler *Server
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return w.Handler.fail(ctx, err)
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) GetOrdersByTable(ctx echo.Context) error {
	var table string
	err := runtime.BindStyledParameterWithOptions("simple", "table", ctx.Param("table"), &table,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return w.Handler.fail(ctx, errs.NewValueIsInvalidErrorWithCause("table", err))
	}
	return w.Handler.GetOrdersByTable(ctx, table)
}

func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return w.Handler.fail(ctx, err)
	}
	return w.Handler.UpdateOrderStatus(ctx, id)
}

func (w *ServerInterfaceWrapper) StartPreparation(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return w.Handler.fail(ctx, err)
	}
	return w.Handler.StartPreparation(ctx, id)
}

func (w *ServerInterfaceWrapper) FinishOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return w.Handler.fail(ctx, err)
	}
	return w.Handler.FinishOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) DeliverOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return w.Handler.fail(ctx, err)
	}
	return w.Handler.DeliverOrder(ctx, id)
}

// RegisterHandlers adds every order route to router.
func RegisterHandlers(router EchoRouter, si *Server) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST("/api/v1/orders", si.CreateOrder)
	router.GET("/api/v1/orders/:id", wrapper.GetOrder)
	router.GET("/api/v1/orders/table/:table", wrapper.GetOrdersByTable)

	router.GET("/api/v1/kitchen/orders/stream", si.OpenKitchenStream)
	router.GET("/api/v1/kitchen/orders/received", si.GetReceivedOrders)
	router.GET("/api/v1/kitchen/orders/in-preparation", si.GetInPreparationOrders)
	router.PATCH("/api/v1/kitchen/orders/:id/status", wrapper.UpdateOrderStatus)
	router.PATCH("/api/v1/kitchen/orders/:id/start-preparation", wrapper.StartPreparation)
	router.PATCH("/api/v1/kitchen/orders/:id/finish", wrapper.FinishOrder)

	router.GET("/api/v1/waiter/orders/stream", si.OpenWaiterStream)
	router.GET("/api/v1/waiter/orders/ready", si.GetReadyOrders)
	router.PATCH("/api/v1/waiter/orders/:id/deliver", wrapper.DeliverOrder)
}

func bindOrderID(ctx echo.Context) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return uuid.Nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}
