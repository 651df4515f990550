package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/customers/)
	ListCustomers(ctx echo.Context) error
	// (POST /api/customers/)
	CreateCustomer(ctx echo.Context) error
	// (PUT /api/customers/{id}/)
	UpdateCustomer(ctx echo.Context, id Id) error
	// (DELETE /api/customers/{id}/)
	DeleteCustomer(ctx echo.Context, id Id) error

	// (GET /api/products/)
	ListProducts(ctx echo.Context) error
	// (POST /api/products/)
	CreateProduct(ctx echo.Context) error
	// (PUT /api/products/{id}/)
	UpdateProduct(ctx echo.Context, id Id) error

	// (GET /api/orders/)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /api/orders/)
	CreateOrder(ctx echo.Context) error
	// (GET /api/orders/{id}/)
	GetOrder(ctx echo.Context, id Id) error
	// (PUT /api/orders/{id}/)
	UpdateOrder(ctx echo.Context, id Id) error
	// (DELETE /api/orders/{id}/)
	DeleteOrder(ctx echo.Context, id Id) error

	// (GET /api/stats/)
	GetStoreStatistics(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListCustomers(ctx echo.Context) error {
	return w.Handler.ListCustomers(ctx)
}

func (w *ServerInterfaceWrapper) CreateCustomer(ctx echo.Context) error {
	return w.Handler.CreateCustomer(ctx)
}

func (w *ServerInterfaceWrapper) UpdateCustomer(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateCustomer(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteCustomer(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteCustomer(ctx, id)
}

func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	return w.Handler.ListProducts(ctx)
}

func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	return w.Handler.CreateProduct(ctx)
}

func (w *ServerInterfaceWrapper) UpdateProduct(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateProduct(ctx, id)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "products", ctx.QueryParams(), &params.Products)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter products: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "customer", ctx.QueryParams(), &params.Customer)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customer: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) GetStoreStatistics(ctx echo.Context) error {
	return w.Handler.GetStoreStatistics(ctx)
}

func bindID(ctx echo.Context) (Id, error) {
	var id Id

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return id, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers with baseURL prepended
// to every path.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/customers/", wrapper.ListCustomers)
	router.POST(baseURL+"/api/customers/", wrapper.CreateCustomer)
	router.PUT(baseURL+"/api/customers/:id/", wrapper.UpdateCustomer)
	router.DELETE(baseURL+"/api/customers/:id/", wrapper.DeleteCustomer)
	router.GET(baseURL+"/api/products/", wrapper.ListProducts)
	router.POST(baseURL+"/api/products/", wrapper.CreateProduct)
	router.PUT(baseURL+"/api/products/:id/", wrapper.UpdateProduct)
	router.GET(baseURL+"/api/orders/", wrapper.ListOrders)
	router.POST(baseURL+"/api/orders/", wrapper.CreateOrder)
	router.GET(baseURL+"/api/orders/:id/", wrapper.GetOrder)
	router.PUT(baseURL+"/api/orders/:id/", wrapper.UpdateOrder)
	router.DELETE(baseURL+"/api/orders/:id/", wrapper.DeleteOrder)
	router.GET(baseURL+"/api/stats/", wrapper.GetStoreStatistics)
}
