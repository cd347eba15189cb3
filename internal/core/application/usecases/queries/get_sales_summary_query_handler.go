package queries

import (
	"context"

	"pos/internal/core/domain/model/order"
)

// GetSalesSummaryQueryHandler backs the sales dashboard and the sales snapshot job.
type GetSalesSummaryQueryHandler struct {
	orders OrderReader
}

func NewGetSalesSummaryQueryHandler(orders OrderReader) GetSalesSummaryQueryHandler {
	return GetSalesSummaryQueryHandler{orders: orders}
}

func (h GetSalesSummaryQueryHandler) Handle(ctx context.Context, query GetSalesSummaryQuery) (order.SalesSummary, error) {
	if err := query.Validate(); err != nil {
		return order.SalesSummary{}, err
	}

	orders, err := h.orders.Load(ctx, query.BusinessID())
	if err != nil {
		return order.SalesSummary{}, err
	}

	return order.Summarize(orders, query.From(), query.To()), nil
}
