package http

import (
	"net/http"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases the server exposes.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	AddOrderItem       commands.AddOrderItemCommandHandler
	ChangeItemQuantity commands.ChangeItemQuantityCommandHandler
	CancelOrderItem    commands.CancelOrderItemCommandHandler
	AdvanceUnit        commands.AdvanceUnitCommandHandler
	AdvanceItem        commands.AdvanceItemCommandHandler
	ApplyDiscount      commands.ApplyDiscountCommandHandler
	ProcessPayment     commands.ProcessPaymentCommandHandler
	EditOrder          commands.EditOrderCommandHandler
	ClearOrders        commands.ClearOrdersCommandHandler
	CreateMenuItem     commands.CreateMenuItemCommandHandler
	DeleteMenuItem     commands.DeleteMenuItemCommandHandler

	ListOrders      queries.ListOrdersQueryHandler
	GetOrder        queries.GetOrderQueryHandler
	GetEditSheet    queries.GetEditSheetQueryHandler
	GetSalesSummary queries.GetSalesSummaryQueryHandler
	ListMenu        queries.ListMenuQueryHandler
}

// Server implements ServerInterface on top of the application use cases.
// Domain errors are returned as is and rendered by ErrorHandler.
type Server struct {
	h Handlers
}

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

var _ ServerInterface = (*Server)(nil)

type newMenuItemRequest struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Price    kernel.Money `json:"price"`
	Category string       `json:"category"`
}

type orderLineRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

type newOrderRequest struct {
	CustomerName string             `json:"customerName"`
	ServiceType  string             `json:"serviceType"`
	Diners       int                `json:"diners"`
	Items        []orderLineRequest `json:"items"`
}

type addItemRequest struct {
	MenuItemID string `json:"menuItemId"`
}

type quantityRequest struct {
	Delta int `json:"delta"`
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

type advanceRequest struct {
	View string `json:"view"`
}

type discountRequest struct {
	ItemIDs []string `json:"itemIds"`
	Reason  string   `json:"reason"`
}

type paymentRequest struct {
	Method string `json:"method"`
}

type editRequest struct {
	Quantities map[string]int `json:"quantities"`
}

// ListMenu handles GET /api/v1/menu.
func (s *Server) ListMenu(ctx echo.Context) error {
	query, err := queries.NewListMenuQuery(businessFrom(ctx).ID)
	if err != nil {
		return err
	}

	items, err := s.h.ListMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, items)
}

// CreateMenuItem handles POST /api/v1/menu.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var req newMenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateMenuItemCommand(businessFrom(ctx).ID, req.ID, req.Name, req.Price, req.Category)
	if err != nil {
		return err
	}

	item, err := s.h.CreateMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, queries.NewMenuItemResponse(item))
}

// DeleteMenuItem handles DELETE /api/v1/menu/{itemId}.
func (s *Server) DeleteMenuItem(ctx echo.Context, itemID string) error {
	cmd, err := commands.NewDeleteMenuItemCommand(businessFrom(ctx).ID, itemID)
	if err != nil {
		return err
	}

	if err = s.h.DeleteMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	raw := ""
	if params.View != nil {
		raw = *params.View
	}
	view, err := order.ParseView(raw)
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(businessFrom(ctx).ID, view)
	if err != nil {
		return err
	}

	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req newOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, l := range req.Items {
		lines = append(lines, commands.OrderLine{MenuItemID: l.MenuItemID, Quantity: l.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(
		businessFrom(ctx).ID,
		req.CustomerName,
		order.ServiceType(req.ServiceType),
		req.Diners,
		lines,
	)
	if err != nil {
		return err
	}

	o, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, queries.NewOrderResponse(o))
}

// ClearOrders handles DELETE /api/v1/orders.
func (s *Server) ClearOrders(ctx echo.Context) error {
	cmd, err := commands.NewClearOrdersCommand(businessFrom(ctx).ID)
	if err != nil {
		return err
	}

	if err = s.h.ClearOrders.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID string) error {
	id, err := parseOrderID(orderID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(businessFrom(ctx).ID, id)
	if err != nil {
		return err
	}

	resp, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, resp)
}

// AddOrderItem handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddOrderItem(ctx echo.Context, orderID string) error {
	id, err := parseOrderID(orderID)
	if err != nil {
		return err
	}

	var req addItemRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAddOrderItemCommand(businessFrom(ctx).ID, id, req.MenuItemID)
	if err != nil {
		return err
	}
	return s.respond(ctx)(s.h.AddOrderItem.Handle(ctx.Request().Context(), cmd))
}

// ChangeItemQuantity handles PATCH /api/v1/orders/{orderId}/items/{itemId}/quantity.
func (s *Server) ChangeItemQuantity(ctx echo.Context, orderID string, itemID string) error {
	id, err := parseOrderID(orderID)
	if err != nil {
		return err
	}

	var req quantityRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewChangeItemQuantityCommand(businessFrom(ctx).ID, id, itemID, req.Delta)
	if err != nil {
		return err
	}
	return s.respond(ctx)(s.h.ChangeItemQuantity.Handle(ctx.Request().Context(), cmd))
}

// CancelOrderItem handles POST /api/v1/orders/{orderId}/items/{itemId}/cancel.
func (s *Server) CancelOrderItem(ctx echo.Context, orderID string, itemID string) error {
	id, err := parseOrderID(orderID)
	if err != nil {
		return err
	}

	var req cancelRequest
	if ctx.Request().ContentLength != 0 {
		if err = ctx.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
		}
	}

	cmd, err := commands.NewCancelOrderItemCommand(businessFrom(ctx).ID, id, itemID, req.Reason)
	if err != nil {
		return err
	}
	return s.respond(ctx)(s.h.CancelOrderItem.Handle(ctx.Request().Context(), cmd))
}

// AdvanceItem handles POST /api/v1/orders/{orderId}/items/{itemId}/advance.
func (s *Server) AdvanceItem(ctx echo.Context, orderID string, itemID string) error {
	id, err := parseOrderID(orderID)
	if err != nil {
		return err
	}

	var req advanceRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAdvanceItemCommand(businessFrom(ctx).ID, id, itemID, order.View(req.View))
	if err != nil {
		return err
	}
	return s.respond(ctx)(s.h.AdvanceItem.Handle(ctx.Request().Context(), cmd))
}

// AdvanceUnit handles POST /api/v1/orders/{orderId}/items/{itemId}/units/{unit}/advance.
func (s *Server) AdvanceUnit(ctx echo.Context, orderID string, itemID string, unit int) error {
	id, err := parseOrderID(orderID)
	if err != nil {
		return err
	}

	var req advanceRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAdvanceUnitCommand(businessFrom(ctx).ID, id, itemID, unit, order.View(req.View))
	if err != nil {
		return err
	}
	return s.respond(ctx)(s.h.AdvanceUnit.Handle(ctx.Request().Context(), cmd))
}

// ApplyDiscount handles POST /api/v1/orders/{orderId}/discount.
func (s *Server) ApplyDiscount(ctx echo.Context, orderID string) error {
	id, err := parseOrderID(orderID)
	if err != nil {
		return err
	}

	var req discountRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewApplyDiscountCommand(businessFrom(ctx).ID, id, req.ItemIDs, req.Reason)
	if err != nil {
		return err
	}
	return s.respond(ctx)(s.h.ApplyDiscount.Handle(ctx.Request().Context(), cmd))
}

// ProcessPayment handles POST /api/v1/orders/{orderId}/payment.
func (s *Server) ProcessPayment(ctx echo.Context, orderID string) error {
	id, err := parseOrderID(orderID)
	if err != nil {
		return err
	}

	var req paymentRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewProcessPaymentCommand(businessFrom(ctx).ID, id, order.PaymentMethod(req.Method))
	if err != nil {
		return err
	}
	return s.respond(ctx)(s.h.ProcessPayment.Handle(ctx.Request().Context(), cmd))
}

// GetEditSheet handles GET /api/v1/orders/{orderId}/edit.
func (s *Server) GetEditSheet(ctx echo.Context, orderID string) error {
	id, err := parseOrderID(orderID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetEditSheetQuery(businessFrom(ctx).ID, id)
	if err != nil {
		return err
	}

	lines, err := s.h.GetEditSheet.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, lines)
}

// EditOrder handles PUT /api/v1/orders/{orderId}/edit.
func (s *Server) EditOrder(ctx echo.Context, orderID string) error {
	id, err := parseOrderID(orderID)
	if err != nil {
		return err
	}

	var req editRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewEditOrderCommand(businessFrom(ctx).ID, id, req.Quantities)
	if err != nil {
		return err
	}
	return s.respond(ctx)(s.h.EditOrder.Handle(ctx.Request().Context(), cmd))
}

// GetSalesSummary handles GET /api/v1/dashboard/sales.
func (s *Server) GetSalesSummary(ctx echo.Context, params GetSalesSummaryParams) error {
	var from, to time.Time
	if params.From != nil {
		from = *params.From
	}
	if params.To != nil {
		to = *params.To
	}

	query, err := queries.NewGetSalesSummaryQuery(businessFrom(ctx).ID, from, to)
	if err != nil {
		return err
	}

	summary, err := s.h.GetSalesSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, queries.NewSalesSummaryResponse(summary))
}

// respond renders the order a mutation returned.
func (s *Server) respond(ctx echo.Context) func(*order.Order, error) error {
	return func(o *order.Order, err error) error {
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, queries.NewOrderResponse(o))
	}
}

func parseOrderID(raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return id, nil
}
