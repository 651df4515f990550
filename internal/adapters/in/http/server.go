package http

import (
	"context"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
	"orders/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Handler is any command or query handler that yields a result.
type Handler[Q, R any] interface {
	Handle(ctx context.Context, request Q) (R, error)
}

// DeleteHandler is a command handler without a result.
type DeleteHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	// Command handlers
	CreateCustomer Handler[commands.CreateCustomerCommand, *customer.Customer]
	UpdateCustomer Handler[commands.UpdateCustomerCommand, *customer.Customer]
	DeleteCustomer DeleteHandler[commands.DeleteCustomerCommand]
	CreateProduct  Handler[commands.CreateProductCommand, *product.Product]
	UpdateProduct  Handler[commands.UpdateProductCommand, *product.Product]
	CreateOrder    Handler[commands.CreateOrderCommand, *order.Order]
	UpdateOrder    Handler[commands.UpdateOrderCommand, *order.Order]
	DeleteOrder    DeleteHandler[commands.DeleteOrderCommand]

	// Query handlers
	ListCustomers      Handler[queries.ListCustomersQuery, []queries.CustomerQueryResponse]
	ListProducts       Handler[queries.ListProductsQuery, []queries.ProductQueryResponse]
	ListOrders         Handler[queries.ListOrdersQuery, []queries.OrderQueryResponse]
	GetOrder           Handler[queries.GetOrderQuery, queries.OrderQueryResponse]
	GetStoreStatistics Handler[queries.GetStoreStatisticsQuery, queries.StoreStatisticsQueryResponse]
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// ListCustomers handles GET /api/customers/.
func (s *Server) ListCustomers(ctx echo.Context) error {
	customers, err := s.handlers.ListCustomers.Handle(ctx.Request().Context(), queries.NewListCustomersQuery())
	if err != nil {
		return fail(ctx, err, emptyList)
	}

	if len(customers) == 0 {
		return notFound(ctx, emptyList)
	}

	response := make([]servers.Customer, len(customers))
	for i, c := range customers {
		response[i] = servers.Customer{
			Id:            c.ID,
			Name:          c.Name,
			ContactNumber: c.ContactNumber,
			Email:         c.Email,
		}
	}

	return respond(ctx, http.StatusOK, MessageRetrieve, response)
}

// CreateCustomer handles POST /api/customers/.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body servers.NewCustomer
	if err := bind(ctx, &body); err != nil {
		return fail(ctx, err, emptyObject)
	}

	cmd, err := commands.NewCreateCustomerCommand(body.Name, body.ContactNumber, body.Email)
	if err != nil {
		return fail(ctx, err, emptyObject)
	}

	c, err := s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err, emptyObject)
	}

	return respond(ctx, http.StatusCreated, MessageCreated, customerResponse(c))
}

// UpdateCustomer handles PUT /api/customers/{id}/.
func (s *Server) UpdateCustomer(ctx echo.Context, id servers.Id) error {
	var body servers.NewCustomer
	if err := bind(ctx, &body); err != nil {
		return fail(ctx, err, emptyObject)
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, body.Name, body.ContactNumber, body.Email)
	if err != nil {
		return fail(ctx, err, emptyObject)
	}

	c, err := s.handlers.UpdateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err, emptyObject)
	}

	return respond(ctx, http.StatusOK, MessageUpdated, customerResponse(c))
}

// DeleteCustomer handles DELETE /api/customers/{id}/.
func (s *Server) DeleteCustomer(ctx echo.Context, id servers.Id) error {
	cmd, err := commands.NewDeleteCustomerCommand(id)
	if err != nil {
		return fail(ctx, err, emptyObject)
	}

	if err = s.handlers.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err, emptyObject)
	}

	return respond(ctx, http.StatusOK, MessageDeleted, emptyObject)
}

// ListProducts handles GET /api/products/.
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.handlers.ListProducts.Handle(ctx.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return fail(ctx, err, emptyList)
	}

	if len(products) == 0 {
		return notFound(ctx, emptyList)
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = servers.Product{
			Id:     p.ID,
			Name:   p.Name,
			Weight: p.Weight.StringFixed(kernel.WeightScale),
		}
	}

	return respond(ctx, http.StatusOK, MessageRetrieve, response)
}

// CreateProduct handles POST /api/products/.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.NewProduct
	if err := bind(ctx, &body); err != nil {
		return fail(ctx, err, emptyObject)
	}

	cmd, err := commands.NewCreateProductCommand(body.Name, *body.Weight)
	if err != nil {
		return fail(ctx, err, emptyObject)
	}

	p, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err, emptyObject)
	}

	return respond(ctx, http.StatusCreated, MessageCreated, productResponse(p))
}

// UpdateProduct handles PUT /api/products/{id}/.
func (s *Server) UpdateProduct(ctx echo.Context, id servers.Id) error {
	var body servers.NewProduct
	if err := bind(ctx, &body); err != nil {
		return fail(ctx, err, emptyObject)
	}

	cmd, err := commands.NewUpdateProductCommand(id, body.Name, *body.Weight)
	if err != nil {
		return fail(ctx, err, emptyObject)
	}

	p, err := s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err, emptyObject)
	}

	return respond(ctx, http.StatusOK, MessageUpdated, productResponse(p))
}

// ListOrders handles GET /api/orders/ with the optional products and
// customer filters.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var productNames, customerName string
	if params.Products != nil {
		productNames = *params.Products
	}
	if params.Customer != nil {
		customerName = *params.Customer
	}

	orders, err := s.handlers.ListOrders.Handle(
		ctx.Request().Context(),
		queries.NewListOrdersQuery(productNames, customerName),
	)
	if err != nil {
		return fail(ctx, err, emptyList)
	}

	if len(orders) == 0 {
		return notFound(ctx, emptyList)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = orderResponse(o)
	}

	return respond(ctx, http.StatusOK, MessageRetrieve, response)
}

// CreateOrder handles POST /api/orders/. The order number is generated.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := bind(ctx, &body); err != nil {
		return fail(ctx, err, emptyObject)
	}

	cmd, err := commands.NewCreateOrderCommand(
		body.Customer,
		kernel.DateOf(body.OrderDate.Time),
		body.Address,
		orderLines(body.OrderItems),
	)
	if err != nil {
		return fail(ctx, err, emptyObject)
	}

	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err, emptyObject)
	}

	return s.respondOrder(ctx, o.ID(), http.StatusCreated, MessageCreated)
}

// GetOrder handles GET /api/orders/{id}/.
func (s *Server) GetOrder(ctx echo.Context, id servers.Id) error {
	return s.respondOrder(ctx, id, http.StatusOK, MessageRetrieve)
}

// UpdateOrder handles PUT /api/orders/{id}/. Items are upserted by product.
func (s *Server) UpdateOrder(ctx echo.Context, id servers.Id) error {
	var body servers.NewOrder
	if err := bind(ctx, &body); err != nil {
		return fail(ctx, err, emptyObject)
	}

	cmd, err := commands.NewUpdateOrderCommand(
		id,
		body.Customer,
		kernel.DateOf(body.OrderDate.Time),
		body.Address,
		orderLines(body.OrderItems),
	)
	if err != nil {
		return fail(ctx, err, emptyObject)
	}

	o, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err, emptyObject)
	}

	return s.respondOrder(ctx, o.ID(), http.StatusOK, MessageUpdated)
}

// DeleteOrder handles DELETE /api/orders/{id}/.
func (s *Server) DeleteOrder(ctx echo.Context, id servers.Id) error {
	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return fail(ctx, err, emptyObject)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err, emptyObject)
	}

	return respond(ctx, http.StatusOK, MessageDeleted, emptyObject)
}

// GetStoreStatistics handles GET /api/stats/.
func (s *Server) GetStoreStatistics(ctx echo.Context) error {
	stats, err := s.handlers.GetStoreStatistics.Handle(
		ctx.Request().Context(),
		queries.NewGetStoreStatisticsQuery(),
	)
	if err != nil {
		return fail(ctx, err, emptyObject)
	}

	return respond(ctx, http.StatusOK, MessageRetrieve, servers.StoreStatistics{
		Customers:         stats.Customers,
		Products:          stats.Products,
		Orders:            stats.Orders,
		OrderItems:        stats.OrderItems,
		TotalWeight:       stats.TotalWeight.StringFixed(kernel.WeightScale),
		LatestOrderNumber: stats.LatestOrderNumber,
	})
}

// respondOrder renders the read model of a stored order, which carries the
// customer details the aggregate does not.
func (s *Server) respondOrder(ctx echo.Context, id int64, status int, message string) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return fail(ctx, err, emptyObject)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err, emptyObject)
	}

	return respond(ctx, status, message, orderResponse(o))
}
