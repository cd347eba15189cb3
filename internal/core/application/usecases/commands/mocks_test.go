package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/menu"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const mainBusiness business.ID = "main"

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) NextNumber(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

// TrackedOrders accepts either a slice or a func returning one, so tests can hand
// back orders the handler created during the call.
func (m *MockOrderUoW) TrackedOrders() []*order.Order {
	args := m.Called()
	switch v := args.Get(0).(type) {
	case func() []*order.Order:
		return v()
	case []*order.Order:
		return v
	default:
		return nil
	}
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create(businessID business.ID) commands.OrderUoW {
	args := m.Called(businessID)
	return args.Get(0).(commands.OrderUoW)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, businessID business.ID, item menu.Item) error {
	args := m.Called(ctx, businessID, item)
	return args.Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, businessID business.ID, itemID string) error {
	args := m.Called(ctx, businessID, itemID)
	return args.Error(0)
}

func (m *MockMenuRepository) GetAll(ctx context.Context, businessID business.ID) ([]menu.Item, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]menu.Item), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishSalesSnapshot(ctx context.Context, snapshot ports.SalesSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newNotifier(publisher ports.EventPublisher) commands.Notifier {
	return commands.NewNotifier(publisher, discardLogger())
}

type menuFixture struct {
	pizza menu.Item
	soda  menu.Item
	salad menu.Item
}

func newMenuFixture(t *testing.T) menuFixture {
	t.Helper()
	return menuFixture{
		pizza: mustMenuItem(t, "pizza", "Pizza", 10),
		soda:  mustMenuItem(t, "soda", "Soda", 5),
		salad: mustMenuItem(t, "salad", "Salad", 7),
	}
}

func (f menuFixture) items() []menu.Item {
	return []menu.Item{f.pizza, f.soda, f.salad}
}

// newOrder takes an order of 2 pizzas and 1 soda: total 25.00.
func (f menuFixture) newOrder(t *testing.T) *order.Order {
	t.Helper()
	draft := order.NewDraft()
	draft.Add(f.pizza)
	draft.Add(f.pizza)
	draft.Add(f.soda)

	o, err := order.NewOrder(kernel.NewUUID(), 1, "Ana", order.OnSite, 2, draft, time.Now().UTC())
	require.NoError(t, err)
	return o
}

// billedOrder is newOrder with every unit moved to billing.
func (f menuFixture) billedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := f.newOrder(t)
	for _, stage := range []order.Stage{order.Preparing, order.Delivering} {
		for _, id := range []string{"pizza", "soda"} {
			_, err := o.AdvanceItem(id, stage)
			require.NoError(t, err)
		}
	}
	require.Equal(t, order.Billing, o.Status())
	return o
}

func mustMenuItem(t *testing.T, id, name string, price float64) menu.Item {
	t.Helper()
	item, err := menu.NewItem(id, name, kernel.MoneyFromFloat(price), "mains")
	require.NoError(t, err)
	return item
}

type mutationMocks struct {
	factory *MockOrderUoWFactory
	uow     *MockOrderUoW
	repo    *MockOrderRepository
}

func (m mutationMocks) assertExpectations(t *testing.T) {
	t.Helper()
	m.factory.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.repo.AssertExpectations(t)
}

func newMutationMocks() mutationMocks {
	return mutationMocks{
		factory: new(MockOrderUoWFactory),
		uow:     new(MockOrderUoW),
		repo:    new(MockOrderRepository),
	}
}

// expectCommitted sets up a unit of work that loads o, stores it and commits.
func expectCommitted(ctx context.Context, o *order.Order) mutationMocks {
	m := newMutationMocks()
	mock.InOrder(
		m.factory.On("Create", mainBusiness).Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("OrderRepository").Return(m.repo).Once(),
		m.repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		m.repo.On("Update", ctx, o).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("TrackedOrders").Return([]*order.Order{o}).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	return m
}

// expectRejected sets up a unit of work that loads o and is rolled back.
func expectRejected(ctx context.Context, o *order.Order) mutationMocks {
	m := newMutationMocks()
	mock.InOrder(
		m.factory.On("Create", mainBusiness).Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("OrderRepository").Return(m.repo).Once(),
		m.repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	return m
}

// expectPublished expects one OrderChanged event for o with action.
func expectPublished(publisher *MockEventPublisher, o *order.Order, action string) {
	publisher.On("PublishOrderChanged", mock.Anything, mock.MatchedBy(func(e ports.OrderChanged) bool {
		return e.BusinessID == mainBusiness && e.OrderID == o.ID() && e.Action == action
	})).Return(nil).Once()
}
