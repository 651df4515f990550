package cmd

import (
	"context"
	"log/slog"
	"time"

	"orders/api"
	httpadapter "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/postgres"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/services"
	"orders/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	engine     services.ValidationEngine
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		engine:     services.NewValidationEngine(time.Now),
		logger:     logger,
	}
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() *commands.CreateCustomerCommandHandler {
	h := commands.NewCreateCustomerCommandHandler(c.customerUoWFactory(), c.engine)
	return &h
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() *commands.UpdateCustomerCommandHandler {
	h := commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory(), c.engine)
	return &h
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() *commands.DeleteCustomerCommandHandler {
	h := commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() *commands.CreateProductCommandHandler {
	h := commands.NewCreateProductCommandHandler(c.productUoWFactory(), c.engine)
	return &h
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() *commands.UpdateProductCommandHandler {
	h := commands.NewUpdateProductCommandHandler(c.productUoWFactory(), c.engine)
	return &h
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.engine)
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() *commands.UpdateOrderCommandHandler {
	h := commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.engine)
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	h := commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateListCustomersQueryHandler() queries.ListCustomersQueryHandler {
	return queries.NewListCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoreStatisticsQueryHandler() queries.GetStoreStatisticsQueryHandler {
	return queries.NewGetStoreStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateCustomer:     c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer:     c.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer:     c.CreateDeleteCustomerCommandHandler(),
		CreateProduct:      c.CreateCreateProductCommandHandler(),
		UpdateProduct:      c.CreateUpdateProductCommandHandler(),
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		UpdateOrder:        c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		ListCustomers:      c.CreateListCustomersQueryHandler(),
		ListProducts:       c.CreateListProductsQueryHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetStoreStatistics: c.CreateGetStoreStatisticsQueryHandler(),
	})
}

// CreateRouter loads the API contract and builds the echo instance.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}

	return httpadapter.NewRouter(c.CreateServer(), doc, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStoreStatisticsQueryHandler(), c.configs.StatsSchedule, c.logger)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
