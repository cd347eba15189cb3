package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	View *string `form:"view,omitempty" json:"view,omitempty"`
}

// GetSalesSummaryParams defines parameters for GetSalesSummary.
type GetSalesSummaryParams struct {
	From *time.Time `form:"from,omitempty" json:"from,omitempty"`
	To   *time.Time `form:"to,omitempty" json:"to,omitempty"`
}

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	// (GET /api/v1/menu)
	ListMenu(ctx echo.Context) error
	// (POST /api/v1/menu)
	CreateMenuItem(ctx echo.Context) error
	// (DELETE /api/v1/menu/{itemId})
	DeleteMenuItem(ctx echo.Context, itemID string) error
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (DELETE /api/v1/orders)
	ClearOrders(ctx echo.Context) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderID string) error
	// (POST /api/v1/orders/{orderId}/items)
	AddOrderItem(ctx echo.Context, orderID string) error
	// (PATCH /api/v1/orders/{orderId}/items/{itemId}/quantity)
	ChangeItemQuantity(ctx echo.Context, orderID string, itemID string) error
	// (POST /api/v1/orders/{orderId}/items/{itemId}/cancel)
	CancelOrderItem(ctx echo.Context, orderID string, itemID string) error
	// (POST /api/v1/orders/{orderId}/items/{itemId}/advance)
	AdvanceItem(ctx echo.Context, orderID string, itemID string) error
	// (POST /api/v1/orders/{orderId}/items/{itemId}/units/{unit}/advance)
	AdvanceUnit(ctx echo.Context, orderID string, itemID string, unit int) error
	// (POST /api/v1/orders/{orderId}/discount)
	ApplyDiscount(ctx echo.Context, orderID string) error
	// (POST /api/v1/orders/{orderId}/payment)
	ProcessPayment(ctx echo.Context, orderID string) error
	// (GET /api/v1/orders/{orderId}/edit)
	GetEditSheet(ctx echo.Context, orderID string) error
	// (PUT /api/v1/orders/{orderId}/edit)
	EditOrder(ctx echo.Context, orderID string) error
	// (GET /api/v1/dashboard/sales)
	GetSalesSummary(ctx echo.Context, params GetSalesSummaryParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func pathParam(ctx echo.Context, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

func (w *ServerInterfaceWrapper) ListMenu(ctx echo.Context) error {
	return w.Handler.ListMenu(ctx)
}

func (w *ServerInterfaceWrapper) CreateMenuItem(ctx echo.Context) error {
	return w.Handler.CreateMenuItem(ctx)
}

func (w *ServerInterfaceWrapper) DeleteMenuItem(ctx echo.Context) error {
	var itemID string
	if err := pathParam(ctx, "itemId", &itemID); err != nil {
		return err
	}
	return w.Handler.DeleteMenuItem(ctx, itemID)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	err := runtime.BindQueryParameter("form", true, false, "view", ctx.QueryParams(), &params.View)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter view: %s", err))
	}
	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) ClearOrders(ctx echo.Context) error {
	return w.Handler.ClearOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var orderID string
	if err := pathParam(ctx, "orderId", &orderID); err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) AddOrderItem(ctx echo.Context) error {
	var orderID string
	if err := pathParam(ctx, "orderId", &orderID); err != nil {
		return err
	}
	return w.Handler.AddOrderItem(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ChangeItemQuantity(ctx echo.Context) error {
	var orderID, itemID string
	if err := pathParam(ctx, "orderId", &orderID); err != nil {
		return err
	}
	if err := pathParam(ctx, "itemId", &itemID); err != nil {
		return err
	}
	return w.Handler.ChangeItemQuantity(ctx, orderID, itemID)
}

func (w *ServerInterfaceWrapper) CancelOrderItem(ctx echo.Context) error {
	var orderID, itemID string
	if err := pathParam(ctx, "orderId", &orderID); err != nil {
		return err
	}
	if err := pathParam(ctx, "itemId", &itemID); err != nil {
		return err
	}
	return w.Handler.CancelOrderItem(ctx, orderID, itemID)
}

func (w *ServerInterfaceWrapper) AdvanceItem(ctx echo.Context) error {
	var orderID, itemID string
	if err := pathParam(ctx, "orderId", &orderID); err != nil {
		return err
	}
	if err := pathParam(ctx, "itemId", &itemID); err != nil {
		return err
	}
	return w.Handler.AdvanceItem(ctx, orderID, itemID)
}

func (w *ServerInterfaceWrapper) AdvanceUnit(ctx echo.Context) error {
	var orderID, itemID string
	var unit int
	if err := pathParam(ctx, "orderId", &orderID); err != nil {
		return err
	}
	if err := pathParam(ctx, "itemId", &itemID); err != nil {
		return err
	}
	if err := pathParam(ctx, "unit", &unit); err != nil {
		return err
	}
	return w.Handler.AdvanceUnit(ctx, orderID, itemID, unit)
}

func (w *ServerInterfaceWrapper) ApplyDiscount(ctx echo.Context) error {
	var orderID string
	if err := pathParam(ctx, "orderId", &orderID); err != nil {
		return err
	}
	return w.Handler.ApplyDiscount(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ProcessPayment(ctx echo.Context) error {
	var orderID string
	if err := pathParam(ctx, "orderId", &orderID); err != nil {
		return err
	}
	return w.Handler.ProcessPayment(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetEditSheet(ctx echo.Context) error {
	var orderID string
	if err := pathParam(ctx, "orderId", &orderID); err != nil {
		return err
	}
	return w.Handler.GetEditSheet(ctx, orderID)
}

func (w *ServerInterfaceWrapper) EditOrder(ctx echo.Context) error {
	var orderID string
	if err := pathParam(ctx, "orderId", &orderID); err != nil {
		return err
	}
	return w.Handler.EditOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetSalesSummary(ctx echo.Context) error {
	var params GetSalesSummaryParams
	if err := runtime.BindQueryParameter("form", true, false, "from", ctx.QueryParams(), &params.From); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter from: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "to", ctx.QueryParams(), &params.To); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter to: %s", err))
	}
	return w.Handler.GetSalesSummary(ctx, params)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/v1/menu", w.ListMenu)
	router.POST(baseURL+"/api/v1/menu", w.CreateMenuItem)
	router.DELETE(baseURL+"/api/v1/menu/:itemId", w.DeleteMenuItem)
	router.GET(baseURL+"/api/v1/orders", w.ListOrders)
	router.POST(baseURL+"/api/v1/orders", w.CreateOrder)
	router.DELETE(baseURL+"/api/v1/orders", w.ClearOrders)
	router.GET(baseURL+"/api/v1/orders/:orderId", w.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/items", w.AddOrderItem)
	router.PATCH(baseURL+"/api/v1/orders/:orderId/items/:itemId/quantity", w.ChangeItemQuantity)
	router.POST(baseURL+"/api/v1/orders/:orderId/items/:itemId/cancel", w.CancelOrderItem)
	router.POST(baseURL+"/api/v1/orders/:orderId/items/:itemId/advance", w.AdvanceItem)
	router.POST(baseURL+"/api/v1/orders/:orderId/items/:itemId/units/:unit/advance", w.AdvanceUnit)
	router.POST(baseURL+"/api/v1/orders/:orderId/discount", w.ApplyDiscount)
	router.POST(baseURL+"/api/v1/orders/:orderId/payment", w.ProcessPayment)
	router.GET(baseURL+"/api/v1/orders/:orderId/edit", w.GetEditSheet)
	router.PUT(baseURL+"/api/v1/orders/:orderId/edit", w.EditOrder)
	router.GET(baseURL+"/api/v1/dashboard/sales", w.GetSalesSummary)
}
