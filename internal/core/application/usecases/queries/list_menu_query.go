package queries

import (
	"errors"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var (
	ErrListMenuQueryIsNotConstructed = errors.New(
		"ListMenuQuery must be created via NewListMenuQuery constructor",
	)
)

// ListMenuQuery lists the menu of a business.
type ListMenuQuery struct {
	businessID business.ID

	guard guard.ConstructorGuard
}

func NewListMenuQuery(businessID business.ID) (ListMenuQuery, error) {
	if err := businessID.Validate(); err != nil {
		return ListMenuQuery{}, err
	}

	return ListMenuQuery{businessID: businessID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMenuQuery) Validate() error {
	return q.guard.Validate(ErrListMenuQueryIsNotConstructed)
}

func (q ListMenuQuery) BusinessID() business.ID {
	return q.businessID
}

type MenuItemResponse struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Price    kernel.Money `json:"price"`
	Category string       `json:"category"`
}
