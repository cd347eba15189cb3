package commands

import (
	"context"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/menu"
	"pos/internal/core/domain/model/order"
)

// mutateOrder loads one order in a unit of work of businessID, applies fn, commits and
// notifies action for every order the unit of work tracked. Nothing is persisted when
// fn fails.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	notifier Notifier,
	businessID business.ID,
	orderID kernel.UUID,
	action string,
	fn func(o *order.Order) error,
) (*order.Order, error) {
	uow := uowFactory.Create(businessID)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = fn(o); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	notifier.ordersChanged(ctx, businessID, action, uow.TrackedOrders())
	return o, nil
}

// loadCatalog reads the menu of businessID into a catalog for id-or-name matching.
func loadCatalog(ctx context.Context, menuRepo menuReader, businessID business.ID) (menu.Catalog, error) {
	items, err := menuRepo.GetAll(ctx, businessID)
	if err != nil {
		return menu.Catalog{}, err
	}
	return menu.NewCatalog(items), nil
}
