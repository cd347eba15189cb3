package orderstore

import (
	"context"
	"fmt"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
)

// Repository works on the collection loaded by its unit of work.
type Repository struct {
	uow *UnitOfWork
}

func (r *Repository) Add(_ context.Context, aggregate *order.Order) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if r.index(aggregate.ID()) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("%s already exists", aggregate.ID()))
	}

	r.uow.orders = append(r.uow.orders, aggregate)
	r.uow.dirty = true
	r.uow.track(aggregate)
	return nil
}

func (r *Repository) Update(_ context.Context, aggregate *order.Order) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	idx := r.index(aggregate.ID())
	if idx < 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.uow.orders[idx] = aggregate
	r.uow.dirty = true
	r.uow.track(aggregate)
	return nil
}

func (r *Repository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	idx := r.index(id)
	if idx < 0 {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return r.uow.orders[idx], nil
}

func (r *Repository) GetAll(_ context.Context) ([]*order.Order, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}
	orders := make([]*order.Order, len(r.uow.orders))
	copy(orders, r.uow.orders)
	return orders, nil
}

// NextNumber is one above the highest number in the collection, unreadable records
// included.
func (r *Repository) NextNumber(_ context.Context) (int, error) {
	if !r.uow.active {
		return 0, ErrNoActiveTransaction
	}
	highest := r.uow.reserved
	for _, o := range r.uow.orders {
		highest = max(highest, o.Number())
	}
	return highest + 1, nil
}

func (r *Repository) Clear(_ context.Context) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	r.uow.orders = []*order.Order{}
	r.uow.unreadable = nil
	r.uow.reserved = 0
	r.uow.cleared = true
	r.uow.tracked = nil
	return nil
}

func (r *Repository) index(id kernel.UUID) int {
	for i, o := range r.uow.orders {
		if o.ID().IsEqual(id) {
			return i
		}
	}
	return -1
}
