package commands

import (
	"errors"
	"strings"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/menu"
	"pos/internal/pkg/guard"
)

var (
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
)

// CreateMenuItemCommand creates or replaces a menu item of a business.
type CreateMenuItemCommand struct {
	businessID business.ID
	item       menu.Item

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand generates an identifier when id is blank.
func NewCreateMenuItemCommand(
	businessID business.ID,
	id, name string,
	price kernel.Money,
	category string,
) (CreateMenuItemCommand, error) {
	if err := businessID.Validate(); err != nil {
		return CreateMenuItemCommand{}, err
	}

	if strings.TrimSpace(id) == "" {
		id = kernel.NewUUID().String()
	}

	item, err := menu.NewItem(id, name, price, category)
	if err != nil {
		return CreateMenuItemCommand{}, err
	}

	return CreateMenuItemCommand{
		businessID: businessID,
		item:       item,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) BusinessID() business.ID {
	return c.businessID
}

func (c CreateMenuItemCommand) Item() menu.Item {
	return c.item
}
