package orderstore

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and by repository calls made outside
// Begin/Commit.
var ErrNoActiveTransaction = errors.New("unit of work has no active transaction")

// UnitOfWorkFactory creates units of work over a Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a unit of work bound to businessID.
func (f *UnitOfWorkFactory) Create(businessID business.ID) ports.UnitOfWork {
	return &UnitOfWork{store: f.store, businessID: businessID}
}

// UnitOfWork loads the collection of one business in Begin, lets the repository work
// on it in memory and writes it back in Commit. Units of work of the same business are
// serialized from Begin until Commit or Rollback.
type UnitOfWork struct {
	store      *Store
	businessID business.ID

	lock       *sync.Mutex
	active     bool
	orders     []*order.Order
	unreadable []json.RawMessage
	reserved   int
	dirty      bool
	cleared    bool
	tracked    []*order.Order
}

func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}
	if err := uow.businessID.Validate(); err != nil {
		return err
	}

	lock := uow.store.lock(uow.businessID)
	lock.Lock()

	snap, err := uow.store.read(ctx, uow.businessID)
	if err != nil {
		lock.Unlock()
		return err
	}

	uow.lock = lock
	uow.active = true
	uow.orders = snap.orders
	uow.unreadable = snap.unreadable
	uow.reserved = snap.reserved
	uow.dirty = false
	uow.cleared = false
	uow.tracked = nil
	return nil
}

func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	defer uow.release()

	switch {
	case uow.cleared && len(uow.orders) == 0:
		return uow.store.Clear(ctx, uow.businessID)
	case uow.dirty || uow.cleared:
		return uow.store.write(ctx, uow.businessID, uow.orders, uow.unreadable)
	default:
		return nil
	}
}

// Rollback discards the loaded collection. Calling it without an active transaction,
// for example after Commit, does nothing.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return nil
	}
	uow.tracked = nil
	uow.release()
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &Repository{uow: uow}
}

// TrackedOrders returns the orders added or updated since Begin, each once, in the
// order they were first touched.
func (uow *UnitOfWork) TrackedOrders() []*order.Order {
	tracked := make([]*order.Order, len(uow.tracked))
	copy(tracked, uow.tracked)
	return tracked
}

func (uow *UnitOfWork) track(o *order.Order) {
	for _, t := range uow.tracked {
		if t.IsEqual(o) {
			return
		}
	}
	uow.tracked = append(uow.tracked, o)
}

func (uow *UnitOfWork) release() {
	uow.active = false
	uow.orders = nil
	uow.unreadable = nil
	uow.reserved = 0
	if uow.lock != nil {
		uow.lock.Unlock()
		uow.lock = nil
	}
}
