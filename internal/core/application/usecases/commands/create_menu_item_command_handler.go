package commands

import (
	"context"

	"pos/internal/core/domain/model/menu"
	"pos/internal/core/ports"
)

// CreateMenuItemCommandHandler stores menu items. Orders already holding the item keep
// the name and price they snapshotted.
type CreateMenuItemCommandHandler struct {
	menuRepo ports.MenuRepository
}

func NewCreateMenuItemCommandHandler(menuRepo ports.MenuRepository) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{menuRepo: menuRepo}
}

func (h CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) (menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return menu.Item{}, err
	}

	if err := h.menuRepo.Add(ctx, cmd.BusinessID(), cmd.Item()); err != nil {
		return menu.Item{}, err
	}

	return cmd.Item(), nil
}
