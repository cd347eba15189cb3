package commands

import (
	"context"
	"time"

	"pos/internal/core/domain/model/order"
)

// CancelOrderItemCommandHandler cancels order lines. Cancelled lines stay on the order
// for auditing but no longer count towards totals or stages.
type CancelOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

func NewCancelOrderItemCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) CancelOrderItemCommandHandler {
	return CancelOrderItemCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h CancelOrderItemCommandHandler) Handle(ctx context.Context, cmd CancelOrderItemCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, h.notifier, cmd.BusinessID(), cmd.OrderID(), ActionItemCancelled,
		func(o *order.Order) error {
			return o.CancelItem(cmd.ItemID(), cmd.Reason(), time.Now().UTC())
		})
}
