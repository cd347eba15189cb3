package commands

import (
	"errors"
	"fmt"
	"strings"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	ErrAdvanceUnitCommandIsNotConstructed = errors.New(
		"AdvanceUnitCommand must be created via NewAdvanceUnitCommand constructor",
	)
)

// AdvanceUnitCommand ticks one unit of an order line in the preparing or delivering tab.
type AdvanceUnitCommand struct { //nolint:recvcheck //using for validation
	businessID business.ID
	orderID    kernel.UUID
	itemID     string
	unitIndex  int
	view       order.Stage

	guard guard.ConstructorGuard
}

func NewAdvanceUnitCommand(
	businessID business.ID,
	orderID kernel.UUID,
	itemID string,
	unitIndex int,
	view order.View,
) (AdvanceUnitCommand, error) {
	if err := businessID.Validate(); err != nil {
		return AdvanceUnitCommand{}, err
	}

	cmd := AdvanceUnitCommand{
		businessID: businessID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setUnitIndex(unitIndex),
		cmd.setView(view),
	); err != nil {
		return AdvanceUnitCommand{}, err
	}

	return cmd, nil
}

func (c AdvanceUnitCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceUnitCommandIsNotConstructed)
}

func (c AdvanceUnitCommand) BusinessID() business.ID {
	return c.businessID
}

func (c AdvanceUnitCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AdvanceUnitCommand) ItemID() string {
	return c.itemID
}

func (c AdvanceUnitCommand) UnitIndex() int {
	return c.unitIndex
}

// View returns the stage of the tab the unit was ticked in.
func (c AdvanceUnitCommand) View() order.Stage {
	return c.view
}

func (c *AdvanceUnitCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceUnitCommand) setItemID(itemID string) error {
	if strings.TrimSpace(itemID) == "" {
		return errs.NewValueIsRequiredError("item id")
	}

	c.itemID = itemID
	return nil
}

func (c *AdvanceUnitCommand) setUnitIndex(unitIndex int) error {
	if unitIndex < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit index", fmt.Errorf("%d must not be negative", unitIndex))
	}

	c.unitIndex = unitIndex
	return nil
}

func (c *AdvanceUnitCommand) setView(view order.View) error {
	stage, err := advanceableStage(view)
	if err != nil {
		return err
	}

	c.view = stage
	return nil
}

// advanceableStage accepts the two tabs whose checkboxes move units forward.
func advanceableStage(view order.View) (order.Stage, error) {
	stage, ok := view.Stage()
	if !ok || (stage != order.Preparing && stage != order.Delivering) {
		return order.Unknown, order.ErrViewNotAdvanceable
	}
	return stage, nil
}
