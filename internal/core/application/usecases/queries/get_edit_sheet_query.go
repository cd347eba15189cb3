package queries

import (
	"errors"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var (
	ErrGetEditSheetQueryIsNotConstructed = errors.New(
		"GetEditSheetQuery must be created via NewGetEditSheetQuery constructor",
	)
)

// GetEditSheetQuery opens the full edit dialog of an order.
type GetEditSheetQuery struct {
	businessID business.ID
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetEditSheetQuery(businessID business.ID, orderID kernel.UUID) (GetEditSheetQuery, error) {
	if err := businessID.Validate(); err != nil {
		return GetEditSheetQuery{}, err
	}
	if err := orderID.Validate(); err != nil {
		return GetEditSheetQuery{}, err
	}

	return GetEditSheetQuery{
		businessID: businessID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetEditSheetQuery) Validate() error {
	return q.guard.Validate(ErrGetEditSheetQueryIsNotConstructed)
}

func (q GetEditSheetQuery) BusinessID() business.ID {
	return q.businessID
}

func (q GetEditSheetQuery) OrderID() kernel.UUID {
	return q.orderID
}

// EditLineResponse is one row of the edit dialog.
type EditLineResponse struct {
	MenuItemID string       `json:"menuItemId"`
	Name       string       `json:"name"`
	Price      kernel.Money `json:"price"`
	Category   string       `json:"category"`
	Quantity   int          `json:"quantity"`
}
