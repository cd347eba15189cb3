package commands

import (
	"context"

	"pos/internal/core/ports"
)

// DeleteMenuItemCommandHandler removes menu items. Order lines that snapshotted the
// item are unaffected.
type DeleteMenuItemCommandHandler struct {
	menuRepo ports.MenuRepository
}

func NewDeleteMenuItemCommandHandler(menuRepo ports.MenuRepository) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{menuRepo: menuRepo}
}

func (h DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.menuRepo.Delete(ctx, cmd.BusinessID(), cmd.ItemID())
}
