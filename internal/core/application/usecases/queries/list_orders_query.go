package queries

import (
	"errors"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery lists the orders of a business shown in one pipeline tab.
//
// Example:
//
//	query, err := NewListOrdersQuery("main", order.ViewPreparing)
//	if err != nil {
//	    return err
//	}
//	kitchen, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	businessID business.ID
	view       order.View

	guard guard.ConstructorGuard
}

// NewListOrdersQuery lists the summary tab when view is empty.
func NewListOrdersQuery(businessID business.ID, view order.View) (ListOrdersQuery, error) {
	if err := businessID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	parsed, err := order.ParseView(string(view))
	if err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		businessID: businessID,
		view:       parsed,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) BusinessID() business.ID {
	return q.businessID
}

func (q ListOrdersQuery) View() order.View {
	return q.view
}
