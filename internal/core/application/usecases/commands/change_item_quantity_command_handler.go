package commands

import (
	"context"
	"time"

	"pos/internal/core/domain/model/order"
)

// ChangeItemQuantityCommandHandler applies the +/- quantity buttons of an order line.
type ChangeItemQuantityCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

func NewChangeItemQuantityCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) ChangeItemQuantityCommandHandler {
	return ChangeItemQuantityCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle never takes a quantity below zero; a line at zero stays listed.
func (h ChangeItemQuantityCommandHandler) Handle(ctx context.Context, cmd ChangeItemQuantityCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, h.notifier, cmd.BusinessID(), cmd.OrderID(), ActionQuantityChanged,
		func(o *order.Order) error {
			return o.ChangeItemQuantity(cmd.ItemID(), cmd.Delta(), time.Now().UTC())
		})
}
