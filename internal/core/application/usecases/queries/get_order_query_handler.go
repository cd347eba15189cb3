package queries

import (
	"context"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
)

type GetOrderQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns an errs.ObjectNotFoundError when the business holds no such order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := findOrder(ctx, h.orders, query.BusinessID(), query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(o), nil
}

func findOrder(ctx context.Context, reader OrderReader, businessID business.ID, id kernel.UUID) (*order.Order, error) {
	orders, err := reader.Load(ctx, businessID)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if o.ID() == id {
			return o, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("order", id)
}
