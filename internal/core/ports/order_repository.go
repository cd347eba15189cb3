package ports

import (
	"context"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
)

// OrderRepository gives access to the order collection of one business. Every
// repository is bound to the business of the unit of work that created it.
type OrderRepository interface {
	// Add appends a new order to the collection.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored order with the same identifier.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with the given identifier or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll returns the collection in insertion order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// NextNumber returns the next sequence number: one above the highest in use.
	NextNumber(ctx context.Context) (int, error)

	// Clear removes every order of the business.
	Clear(ctx context.Context) error
}
