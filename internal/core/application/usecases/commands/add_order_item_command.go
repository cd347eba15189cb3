package commands

import (
	"errors"
	"strings"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	ErrAddOrderItemCommandIsNotConstructed = errors.New(
		"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
	)
)

// AddOrderItemCommand adds one unit of a menu item to an existing order.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	businessID business.ID
	orderID    kernel.UUID
	menuItemID string

	guard guard.ConstructorGuard
}

func NewAddOrderItemCommand(businessID business.ID, orderID kernel.UUID, menuItemID string) (AddOrderItemCommand, error) {
	if err := businessID.Validate(); err != nil {
		return AddOrderItemCommand{}, err
	}

	cmd := AddOrderItemCommand{
		businessID: businessID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMenuItemID(menuItemID),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return cmd, nil
}

func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

func (c AddOrderItemCommand) BusinessID() business.ID {
	return c.businessID
}

func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddOrderItemCommand) MenuItemID() string {
	return c.menuItemID
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setMenuItemID(menuItemID string) error {
	menuItemID = strings.TrimSpace(menuItemID)
	if menuItemID == "" {
		return errs.NewValueIsRequiredError("menu item id")
	}

	c.menuItemID = menuItemID
	return nil
}
