package ports

import (
	"context"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/order"
)

// UnitOfWorkFactory creates a UnitOfWork bound to one business for each command.
type UnitOfWorkFactory interface {
	Create(businessID business.ID) UnitOfWork
}

// UnitOfWork is the transaction boundary of a workflow: Begin loads the business
// collection, the repository mutates it and Commit writes it back in one step.
type UnitOfWork interface {
	// Begin loads the collection of the bound business.
	Begin(ctx context.Context) error

	// Commit persists every change made through OrderRepository.
	Commit(ctx context.Context) error

	// Rollback discards uncommitted changes. It is safe to call after Commit.
	Rollback(ctx context.Context) error

	// OrderRepository returns the repository bound to the loaded collection.
	OrderRepository() OrderRepository

	// TrackedOrders returns the orders added or updated through this unit of work.
	TrackedOrders() []*order.Order
}
