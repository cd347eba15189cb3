package commands

import (
	"errors"
	"strings"

	"pos/internal/core/domain/model/business"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
		"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
	)
)

// DeleteMenuItemCommand removes a menu item of a business.
type DeleteMenuItemCommand struct {
	businessID business.ID
	itemID     string

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(businessID business.ID, itemID string) (DeleteMenuItemCommand, error) {
	if err := businessID.Validate(); err != nil {
		return DeleteMenuItemCommand{}, err
	}

	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return DeleteMenuItemCommand{}, errs.NewValueIsRequiredError("menu item id")
	}

	return DeleteMenuItemCommand{
		businessID: businessID,
		itemID:     itemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) BusinessID() business.ID {
	return c.businessID
}

func (c DeleteMenuItemCommand) ItemID() string {
	return c.itemID
}
