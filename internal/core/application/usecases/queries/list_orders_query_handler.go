package queries

import (
	"context"

	"pos/internal/core/domain/model/order"
)

// ListOrdersQueryHandler evaluates tab membership from unit stages on every call, so a
// stale cached status never puts an order in the wrong tab.
type ListOrdersQueryHandler struct {
	orders OrderReader
}

func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle returns the matching orders in collection order.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.Load(ctx, query.BusinessID())
	if err != nil {
		return nil, err
	}

	return newOrderResponses(order.FilterByView(orders, query.View())), nil
}
