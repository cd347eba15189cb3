package commands

import (
	"errors"
	"strings"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	ErrAdvanceItemCommandIsNotConstructed = errors.New(
		"AdvanceItemCommand must be created via NewAdvanceItemCommand constructor",
	)
)

// AdvanceItemCommand ticks every unit of an order line that sits in the viewed tab.
type AdvanceItemCommand struct { //nolint:recvcheck //using for validation
	businessID business.ID
	orderID    kernel.UUID
	itemID     string
	view       order.Stage

	guard guard.ConstructorGuard
}

func NewAdvanceItemCommand(
	businessID business.ID,
	orderID kernel.UUID,
	itemID string,
	view order.View,
) (AdvanceItemCommand, error) {
	if err := businessID.Validate(); err != nil {
		return AdvanceItemCommand{}, err
	}

	cmd := AdvanceItemCommand{
		businessID: businessID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setView(view),
	); err != nil {
		return AdvanceItemCommand{}, err
	}

	return cmd, nil
}

func (c AdvanceItemCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceItemCommandIsNotConstructed)
}

func (c AdvanceItemCommand) BusinessID() business.ID {
	return c.businessID
}

func (c AdvanceItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AdvanceItemCommand) ItemID() string {
	return c.itemID
}

func (c AdvanceItemCommand) View() order.Stage {
	return c.view
}

func (c *AdvanceItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceItemCommand) setItemID(itemID string) error {
	if strings.TrimSpace(itemID) == "" {
		return errs.NewValueIsRequiredError("item id")
	}

	c.itemID = itemID
	return nil
}

func (c *AdvanceItemCommand) setView(view order.View) error {
	stage, err := advanceableStage(view)
	if err != nil {
		return err
	}

	c.view = stage
	return nil
}
