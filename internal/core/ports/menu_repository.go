package ports

import (
	"context"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/menu"
)

// MenuRepository stores the menu of each business.
type MenuRepository interface {
	// Add creates or replaces a menu item.
	Add(ctx context.Context, businessID business.ID, item menu.Item) error

	// Delete removes a menu item or returns an errs.ObjectNotFoundError.
	Delete(ctx context.Context, businessID business.ID, itemID string) error

	// GetAll returns the menu ordered by category and name.
	GetAll(ctx context.Context, businessID business.ID) ([]menu.Item, error)
}
