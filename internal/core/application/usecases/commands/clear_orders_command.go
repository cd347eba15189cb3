package commands

import (
	"errors"

	"pos/internal/core/domain/model/business"
	"pos/internal/pkg/guard"
)

var (
	ErrClearOrdersCommandIsNotConstructed = errors.New(
		"ClearOrdersCommand must be created via NewClearOrdersCommand constructor",
	)
)

// ClearOrdersCommand deletes every order of one business.
type ClearOrdersCommand struct {
	businessID business.ID

	guard guard.ConstructorGuard
}

func NewClearOrdersCommand(businessID business.ID) (ClearOrdersCommand, error) {
	if err := businessID.Validate(); err != nil {
		return ClearOrdersCommand{}, err
	}

	return ClearOrdersCommand{
		businessID: businessID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ClearOrdersCommand) Validate() error {
	return c.guard.Validate(ErrClearOrdersCommandIsNotConstructed)
}

func (c ClearOrdersCommand) BusinessID() business.ID {
	return c.businessID
}
