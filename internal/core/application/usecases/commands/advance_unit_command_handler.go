package commands

import (
	"context"

	"pos/internal/core/domain/model/order"
)

// AdvanceUnitCommandHandler moves single units through preparing, delivering and billing.
type AdvanceUnitCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

func NewAdvanceUnitCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) AdvanceUnitCommandHandler {
	return AdvanceUnitCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle rejects units that are not at the stage of the tab they were ticked in.
// When the last unit of the order reaches billing the whole order moves to billing.
func (h AdvanceUnitCommandHandler) Handle(ctx context.Context, cmd AdvanceUnitCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, h.notifier, cmd.BusinessID(), cmd.OrderID(), ActionUnitAdvanced,
		func(o *order.Order) error {
			return o.AdvanceUnit(cmd.ItemID(), cmd.UnitIndex(), cmd.View())
		})
}
