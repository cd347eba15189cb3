package queries

import (
	"errors"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery fetches one order of a business.
type GetOrderQuery struct {
	businessID business.ID
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(businessID business.ID, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := businessID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		businessID: businessID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) BusinessID() business.ID {
	return q.businessID
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
