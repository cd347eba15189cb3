package commands

import (
	"context"
)

// ClearOrdersCommandHandler performs the bulk clear of a business. Other businesses
// are never touched.
type ClearOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewClearOrdersCommandHandler(uowFactory OrderUoWFactory) ClearOrdersCommandHandler {
	return ClearOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ClearOrdersCommandHandler) Handle(ctx context.Context, cmd ClearOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create(cmd.BusinessID())
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Clear(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
