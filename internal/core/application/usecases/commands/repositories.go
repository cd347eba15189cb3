// Package commands contains business operations that modify system state.
// Every order command runs inside one unit of work bound to the business it targets:
// validation first, then Begin, mutation, Commit and finally the change notification.
package commands

import (
	"context"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/menu"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
)

// ErrNoActiveBusiness is returned before anything else when a command carries no business.
var ErrNoActiveBusiness = business.ErrNoActiveBusiness

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles the unit of work lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a unit of work.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages one business's order collection for the duration of a command.
	//
	// Example:
	//   uow := factory.Create(businessID)
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	//   changed := uow.TrackedOrders()
	OrderUoW interface {
		TxManager
		OrderRepoFactory

		// TrackedOrders returns the orders added or updated through this unit of work.
		TrackedOrders() []*order.Order
	}

	// OrderUoWFactory creates units of work bound to one business.
	OrderUoWFactory interface {
		Create(businessID business.ID) OrderUoW
	}
)

// menuReader is the part of ports.MenuRepository order commands need.
type menuReader interface {
	GetAll(ctx context.Context, businessID business.ID) ([]menu.Item, error)
}
