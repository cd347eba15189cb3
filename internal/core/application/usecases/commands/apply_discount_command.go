package commands

import (
	"errors"
	"strings"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var (
	ErrApplyDiscountCommandIsNotConstructed = errors.New(
		"ApplyDiscountCommand must be created via NewApplyDiscountCommand constructor",
	)
)

// ApplyDiscountCommand waives the full value of the selected lines of an order.
type ApplyDiscountCommand struct { //nolint:recvcheck //using for validation
	businessID business.ID
	orderID    kernel.UUID
	itemIDs    []string
	reason     string

	guard guard.ConstructorGuard
}

// NewApplyDiscountCommand requires at least one selected line and a reason; both
// problems are reported together.
func NewApplyDiscountCommand(
	businessID business.ID,
	orderID kernel.UUID,
	itemIDs []string,
	reason string,
) (ApplyDiscountCommand, error) {
	if err := businessID.Validate(); err != nil {
		return ApplyDiscountCommand{}, err
	}

	cmd := ApplyDiscountCommand{
		businessID: businessID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemIDs(itemIDs),
		cmd.setReason(reason),
	); err != nil {
		return ApplyDiscountCommand{}, err
	}

	return cmd, nil
}

func (c ApplyDiscountCommand) Validate() error {
	return c.guard.Validate(ErrApplyDiscountCommandIsNotConstructed)
}

func (c ApplyDiscountCommand) BusinessID() business.ID {
	return c.businessID
}

func (c ApplyDiscountCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ApplyDiscountCommand) ItemIDs() []string {
	ids := make([]string, len(c.itemIDs))
	copy(ids, c.itemIDs)
	return ids
}

func (c ApplyDiscountCommand) Reason() string {
	return c.reason
}

func (c *ApplyDiscountCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApplyDiscountCommand) setItemIDs(itemIDs []string) error {
	if len(itemIDs) == 0 {
		return order.ErrNoItemsSelected
	}

	c.itemIDs = make([]string, len(itemIDs))
	copy(c.itemIDs, itemIDs)
	return nil
}

func (c *ApplyDiscountCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return order.ErrDiscountReasonRequired
	}

	c.reason = reason
	return nil
}
