package commands

import (
	"context"
	"time"

	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
)

// EditOrderCommandHandler applies the full order edit against the current menu.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	menuRepo   ports.MenuRepository
	notifier   Notifier
}

func NewEditOrderCommandHandler(
	uowFactory OrderUoWFactory,
	menuRepo ports.MenuRepository,
	notifier Notifier,
) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		menuRepo:   menuRepo,
		notifier:   notifier,
	}
}

func (h EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	catalog, err := loadCatalog(ctx, h.menuRepo, cmd.BusinessID())
	if err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, h.notifier, cmd.BusinessID(), cmd.OrderID(), ActionOrderEdited,
		func(o *order.Order) error {
			return o.ApplyEdit(catalog, cmd.Quantities(), time.Now().UTC())
		})
}
