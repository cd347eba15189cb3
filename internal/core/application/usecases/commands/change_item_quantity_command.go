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
	ErrChangeItemQuantityCommandIsNotConstructed = errors.New(
		"ChangeItemQuantityCommand must be created via NewChangeItemQuantityCommand constructor",
	)
)

// ChangeItemQuantityCommand moves the quantity of an order line up or down by delta.
// The + and - buttons send 1 and -1.
type ChangeItemQuantityCommand struct { //nolint:recvcheck //using for validation
	businessID business.ID
	orderID    kernel.UUID
	itemID     string
	delta      int

	guard guard.ConstructorGuard
}

func NewChangeItemQuantityCommand(
	businessID business.ID,
	orderID kernel.UUID,
	itemID string,
	delta int,
) (ChangeItemQuantityCommand, error) {
	if err := businessID.Validate(); err != nil {
		return ChangeItemQuantityCommand{}, err
	}

	cmd := ChangeItemQuantityCommand{
		businessID: businessID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setDelta(delta),
	); err != nil {
		return ChangeItemQuantityCommand{}, err
	}

	return cmd, nil
}

func (c ChangeItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeItemQuantityCommandIsNotConstructed)
}

func (c ChangeItemQuantityCommand) BusinessID() business.ID {
	return c.businessID
}

func (c ChangeItemQuantityCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeItemQuantityCommand) ItemID() string {
	return c.itemID
}

func (c ChangeItemQuantityCommand) Delta() int {
	return c.delta
}

func (c *ChangeItemQuantityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeItemQuantityCommand) setItemID(itemID string) error {
	if strings.TrimSpace(itemID) == "" {
		return errs.NewValueIsRequiredError("item id")
	}

	c.itemID = itemID
	return nil
}

func (c *ChangeItemQuantityCommand) setDelta(delta int) error {
	if delta == 0 {
		return errs.NewValueIsInvalidError("delta")
	}

	c.delta = delta
	return nil
}
