package cmd

import (
	"log/slog"

	httpin "pos/internal/adapters/in/http"
	"pos/internal/adapters/out/orderstore"
	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/business"
	"pos/internal/core/ports"
	"pos/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	store      *orderstore.Store
	uowFactory *orderstore.UnitOfWorkFactory
	menuRepo   ports.MenuRepository
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	kv ports.KeyValueStore,
	menuRepo ports.MenuRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	store := orderstore.NewStore(kv, business.ID(config.DefaultBusinessID), logger)
	return CompositionRoot{
		config:     config,
		store:      store,
		uowFactory: orderstore.NewUnitOfWorkFactory(store),
		menuRepo:   menuRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func(businessID business.ID) commands.OrderUoW {
		return c.uowFactory.Create(businessID)
	})
}

func (c *CompositionRoot) notifier() commands.Notifier {
	return commands.NewNotifier(c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.menuRepo, c.notifier())
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	return commands.NewAddOrderItemCommandHandler(c.orderUoWFactory(), c.menuRepo, c.notifier())
}

func (c *CompositionRoot) CreateChangeItemQuantityCommandHandler() commands.ChangeItemQuantityCommandHandler {
	return commands.NewChangeItemQuantityCommandHandler(c.orderUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateCancelOrderItemCommandHandler() commands.CancelOrderItemCommandHandler {
	return commands.NewCancelOrderItemCommandHandler(c.orderUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateAdvanceUnitCommandHandler() commands.AdvanceUnitCommandHandler {
	return commands.NewAdvanceUnitCommandHandler(c.orderUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateAdvanceItemCommandHandler() commands.AdvanceItemCommandHandler {
	return commands.NewAdvanceItemCommandHandler(c.orderUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateApplyDiscountCommandHandler() commands.ApplyDiscountCommandHandler {
	return commands.NewApplyDiscountCommandHandler(c.orderUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	return commands.NewProcessPaymentCommandHandler(c.orderUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.orderUoWFactory(), c.menuRepo, c.notifier())
}

func (c *CompositionRoot) CreateClearOrdersCommandHandler() commands.ClearOrdersCommandHandler {
	return commands.NewClearOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.menuRepo)
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	return commands.NewDeleteMenuItemCommandHandler(c.menuRepo)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetEditSheetQueryHandler() queries.GetEditSheetQueryHandler {
	return queries.NewGetEditSheetQueryHandler(c.store, c.menuRepo)
}

func (c *CompositionRoot) CreateGetSalesSummaryQueryHandler() queries.GetSalesSummaryQueryHandler {
	return queries.NewGetSalesSummaryQueryHandler(c.store)
}

func (c *CompositionRoot) CreateListMenuQueryHandler() queries.ListMenuQueryHandler {
	return queries.NewListMenuQueryHandler(c.menuRepo)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		AddOrderItem:       c.CreateAddOrderItemCommandHandler(),
		ChangeItemQuantity: c.CreateChangeItemQuantityCommandHandler(),
		CancelOrderItem:    c.CreateCancelOrderItemCommandHandler(),
		AdvanceUnit:        c.CreateAdvanceUnitCommandHandler(),
		AdvanceItem:        c.CreateAdvanceItemCommandHandler(),
		ApplyDiscount:      c.CreateApplyDiscountCommandHandler(),
		ProcessPayment:     c.CreateProcessPaymentCommandHandler(),
		EditOrder:          c.CreateEditOrderCommandHandler(),
		ClearOrders:        c.CreateClearOrdersCommandHandler(),
		CreateMenuItem:     c.CreateCreateMenuItemCommandHandler(),
		DeleteMenuItem:     c.CreateDeleteMenuItemCommandHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetEditSheet:       c.CreateGetEditSheetQueryHandler(),
		GetSalesSummary:    c.CreateGetSalesSummaryQueryHandler(),
		ListMenu:           c.CreateListMenuQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	businesses := make([]business.ID, 0, len(c.config.SalesSnapshotBusinesses))
	for _, raw := range c.config.SalesSnapshotBusinesses {
		id, err := business.NewID(raw)
		if err != nil {
			continue
		}
		businesses = append(businesses, id)
	}
	return jobs.NewJobManager(
		c.CreateGetSalesSummaryQueryHandler(),
		c.publisher,
		businesses,
		c.config.SalesSnapshotSchedule,
		c.logger,
	)
}

type FuncOrderUoWFactory func(businessID business.ID) commands.OrderUoW

func (f FuncOrderUoWFactory) Create(businessID business.ID) commands.OrderUoW {
	return f(businessID)
}
