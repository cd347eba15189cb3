package commands

import (
	"errors"
	"fmt"
	"strings"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderLine is one line of the new-order form: a menu item and how many of it.
type OrderLine struct {
	MenuItemID string
	Quantity   int
}

// CreateOrderCommand represents a submitted new-order form.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("main", "Ana", order.OnSite, 2, []OrderLine{
//	    {MenuItemID: "pizza", Quantity: 2},
//	    {MenuItemID: "soda", Quantity: 1},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order form: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, menuRepo, notifier)
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	businessID   business.ID
	customerName string
	serviceType  order.ServiceType
	diners       int
	lines        []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the form. The business is checked first; the
// remaining fields are validated together.
func NewCreateOrderCommand(
	businessID business.ID,
	customerName string,
	serviceType order.ServiceType,
	diners int,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	if err := businessID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd := CreateOrderCommand{
		businessID: businessID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setServiceType(serviceType),
		cmd.setDiners(diners),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) BusinessID() business.ID {
	return c.businessID
}

func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

func (c CreateOrderCommand) ServiceType() order.ServiceType {
	return c.serviceType
}

func (c CreateOrderCommand) Diners() int {
	return c.diners
}

// Lines returns the form lines in submission order.
func (c CreateOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return order.ErrCustomerNameRequired
	}

	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setServiceType(serviceType order.ServiceType) error {
	if serviceType == "" {
		serviceType = order.OnSite
	}
	if err := serviceType.Validate(); err != nil {
		return err
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreateOrderCommand) setDiners(diners int) error {
	if diners < 0 {
		return errs.NewValueIsInvalidErrorWithCause("diners", fmt.Errorf("%d must not be negative", diners))
	}

	c.diners = diners
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return order.ErrNoItemsSelected
	}
	for _, line := range lines {
		if strings.TrimSpace(line.MenuItemID) == "" {
			return errs.NewValueIsRequiredError("menu item id")
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%s: %d must be positive", line.MenuItemID, line.Quantity))
		}
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
