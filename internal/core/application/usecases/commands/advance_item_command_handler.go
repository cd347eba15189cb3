package commands

import (
	"context"

	"pos/internal/core/domain/model/order"
)

// AdvanceItemCommandHandler backs the per-line "select all" checkbox.
type AdvanceItemCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

func NewAdvanceItemCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) AdvanceItemCommandHandler {
	return AdvanceItemCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h AdvanceItemCommandHandler) Handle(ctx context.Context, cmd AdvanceItemCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, h.notifier, cmd.BusinessID(), cmd.OrderID(), ActionItemAdvanced,
		func(o *order.Order) error {
			_, err := o.AdvanceItem(cmd.ItemID(), cmd.View())
			return err
		})
}
