// Package queries contains read-only operations over the order collections and menus.
// Queries never open a unit of work; they read the persisted collection directly and
// project it into read models.
package queries

import (
	"context"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/menu"
	"pos/internal/core/domain/model/order"
)

// OrderReader loads the order collection of a business.
type OrderReader interface {
	Load(ctx context.Context, businessID business.ID) ([]*order.Order, error)
}

// MenuReader lists the menu of a business.
type MenuReader interface {
	GetAll(ctx context.Context, businessID business.ID) ([]menu.Item, error)
}
