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
	ErrCancelOrderItemCommandIsNotConstructed = errors.New(
		"CancelOrderItemCommand must be created via NewCancelOrderItemCommand constructor",
	)
)

// CancelOrderItemCommand cancels an order line. The reason is optional here; the
// order demands it once the line reached billing.
type CancelOrderItemCommand struct { //nolint:recvcheck //using for validation
	businessID business.ID
	orderID    kernel.UUID
	itemID     string
	reason     string

	guard guard.ConstructorGuard
}

func NewCancelOrderItemCommand(
	businessID business.ID,
	orderID kernel.UUID,
	itemID string,
	reason string,
) (CancelOrderItemCommand, error) {
	if err := businessID.Validate(); err != nil {
		return CancelOrderItemCommand{}, err
	}

	cmd := CancelOrderItemCommand{
		businessID: businessID,
		reason:     strings.TrimSpace(reason),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
	); err != nil {
		return CancelOrderItemCommand{}, err
	}

	return cmd, nil
}

func (c CancelOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderItemCommandIsNotConstructed)
}

func (c CancelOrderItemCommand) BusinessID() business.ID {
	return c.businessID
}

func (c CancelOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CancelOrderItemCommand) ItemID() string {
	return c.itemID
}

func (c CancelOrderItemCommand) Reason() string {
	return c.reason
}

func (c *CancelOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderItemCommand) setItemID(itemID string) error {
	if strings.TrimSpace(itemID) == "" {
		return errs.NewValueIsRequiredError("item id")
	}

	c.itemID = itemID
	return nil
}
