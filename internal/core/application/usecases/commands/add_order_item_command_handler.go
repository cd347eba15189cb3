package commands

import (
	"context"
	"time"

	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// AddOrderItemCommandHandler adds menu items to orders that are already placed.
type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	menuRepo   ports.MenuRepository
	notifier   Notifier
}

func NewAddOrderItemCommandHandler(
	uowFactory OrderUoWFactory,
	menuRepo ports.MenuRepository,
	notifier Notifier,
) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
		menuRepo:   menuRepo,
		notifier:   notifier,
	}
}

// Handle bumps the active line with the same name or appends a new line at preparing.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	catalog, err := loadCatalog(ctx, h.menuRepo, cmd.BusinessID())
	if err != nil {
		return nil, err
	}

	item, ok := catalog.Get(cmd.MenuItemID())
	if !ok {
		return nil, errs.NewObjectNotFoundError("menu item", cmd.MenuItemID())
	}

	return mutateOrder(ctx, h.uowFactory, h.notifier, cmd.BusinessID(), cmd.OrderID(), ActionItemAdded,
		func(o *order.Order) error {
			return o.AddItem(item, time.Now().UTC())
		})
}
