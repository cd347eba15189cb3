package commands

import (
	"context"
	"time"

	"pos/internal/core/domain/model/order"
)

// ApplyDiscountCommandHandler applies discounts. Discounts accumulate; the same line
// can be discounted twice.
type ApplyDiscountCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

func NewApplyDiscountCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) ApplyDiscountCommandHandler {
	return ApplyDiscountCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h ApplyDiscountCommandHandler) Handle(ctx context.Context, cmd ApplyDiscountCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, h.notifier, cmd.BusinessID(), cmd.OrderID(), ActionDiscountApplied,
		func(o *order.Order) error {
			_, err := o.ApplyDiscount(cmd.ItemIDs(), cmd.Reason(), time.Now().UTC())
			return err
		})
}
