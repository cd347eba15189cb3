package commands

import (
	"context"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// CreateOrderCommandHandler turns a new-order form into an order with the next
// sequence number of its business.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	menuRepo   ports.MenuRepository
	notifier   Notifier
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	menuRepo ports.MenuRepository,
	notifier Notifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		menuRepo:   menuRepo,
		notifier:   notifier,
	}
}

// Handle resolves every line against the menu of the business, snapshots name and
// price into a draft and stores the new order with all units at preparing.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	catalog, err := loadCatalog(ctx, h.menuRepo, cmd.BusinessID())
	if err != nil {
		return nil, err
	}

	draft := order.NewDraft()
	for _, line := range cmd.Lines() {
		item, ok := catalog.Get(line.MenuItemID)
		if !ok {
			return nil, errs.NewObjectNotFoundError("menu item", line.MenuItemID)
		}
		for range line.Quantity {
			draft.Add(item)
		}
	}

	uow := h.uowFactory.Create(cmd.BusinessID())
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	number, err := orderRepo.NextNumber(ctx)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		cmd.CustomerName(),
		cmd.ServiceType(),
		cmd.Diners(),
		draft,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.ordersChanged(ctx, cmd.BusinessID(), ActionOrderCreated, uow.TrackedOrders())
	return o, nil
}
