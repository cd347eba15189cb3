package commands

import (
	"errors"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var (
	ErrProcessPaymentCommandIsNotConstructed = errors.New(
		"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
	)
)

// ProcessPaymentCommand settles an order with one of the accepted payment methods.
type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	businessID business.ID
	orderID    kernel.UUID
	method     order.PaymentMethod

	guard guard.ConstructorGuard
}

func NewProcessPaymentCommand(
	businessID business.ID,
	orderID kernel.UUID,
	method order.PaymentMethod,
) (ProcessPaymentCommand, error) {
	if err := businessID.Validate(); err != nil {
		return ProcessPaymentCommand{}, err
	}

	cmd := ProcessPaymentCommand{
		businessID: businessID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMethod(method),
	); err != nil {
		return ProcessPaymentCommand{}, err
	}

	return cmd, nil
}

func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

func (c ProcessPaymentCommand) BusinessID() business.ID {
	return c.businessID
}

func (c ProcessPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ProcessPaymentCommand) Method() order.PaymentMethod {
	return c.method
}

func (c *ProcessPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ProcessPaymentCommand) setMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
