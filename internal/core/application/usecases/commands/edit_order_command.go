package commands

import (
	"errors"
	"fmt"
	"maps"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	ErrEditOrderCommandIsNotConstructed = errors.New(
		"EditOrderCommand must be created via NewEditOrderCommand constructor",
	)
)

// EditOrderCommand confirms the full edit sheet of an order. Quantities are keyed by
// menu item id; menu items that are left out keep their current quantity.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	businessID business.ID
	orderID    kernel.UUID
	quantities map[string]int

	guard guard.ConstructorGuard
}

func NewEditOrderCommand(
	businessID business.ID,
	orderID kernel.UUID,
	quantities map[string]int,
) (EditOrderCommand, error) {
	if err := businessID.Validate(); err != nil {
		return EditOrderCommand{}, err
	}

	cmd := EditOrderCommand{
		businessID: businessID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setQuantities(quantities),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return cmd, nil
}

func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

func (c EditOrderCommand) BusinessID() business.ID {
	return c.businessID
}

func (c EditOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c EditOrderCommand) Quantities() map[string]int {
	return maps.Clone(c.quantities)
}

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setQuantities(quantities map[string]int) error {
	for id, q := range quantities {
		if q < 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%s: %d must not be negative", id, q))
		}
	}

	c.quantities = maps.Clone(quantities)
	if c.quantities == nil {
		c.quantities = map[string]int{}
	}
	return nil
}
