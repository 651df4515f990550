package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"orders/api"
	httpadapter "orders/internal/adapters/in/http"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMock[Q, R any] struct {
	mock.Mock
}

func (m *handlerMock[Q, R]) Handle(ctx context.Context, request Q) (R, error) {
	args := m.Called(ctx, request)
	var result R
	if v := args.Get(0); v != nil {
		result = v.(R)
	}
	return result, args.Error(1)
}

type deleteHandlerMock[C any] struct {
	mock.Mock
}

func (m *deleteHandlerMock[C]) Handle(ctx context.Context, cmd C) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type testServer struct {
	echo *echo.Echo

	createCustomer *handlerMock[commands.CreateCustomerCommand, *customer.Customer]
	updateCustomer *handlerMock[commands.UpdateCustomerCommand, *customer.Customer]
	deleteCustomer *deleteHandlerMock[commands.DeleteCustomerCommand]
	createProduct  *handlerMock[commands.CreateProductCommand, *product.Product]
	updateProduct  *handlerMock[commands.UpdateProductCommand, *product.Product]
	createOrder    *handlerMock[commands.CreateOrderCommand, *order.Order]
	updateOrder    *handlerMock[commands.UpdateOrderCommand, *order.Order]
	deleteOrder    *deleteHandlerMock[commands.DeleteOrderCommand]

	listCustomers *handlerMock[queries.ListCustomersQuery, []queries.CustomerQueryResponse]
	listProducts  *handlerMock[queries.ListProductsQuery, []queries.ProductQueryResponse]
	listOrders    *handlerMock[queries.ListOrdersQuery, []queries.OrderQueryResponse]
	getOrder      *handlerMock[queries.GetOrderQuery, queries.OrderQueryResponse]
	getStats      *handlerMock[queries.GetStoreStatisticsQuery, queries.StoreStatisticsQueryResponse]
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		createCustomer: &handlerMock[commands.CreateCustomerCommand, *customer.Customer]{},
		updateCustomer: &handlerMock[commands.UpdateCustomerCommand, *customer.Customer]{},
		deleteCustomer: &deleteHandlerMock[commands.DeleteCustomerCommand]{},
		createProduct:  &handlerMock[commands.CreateProductCommand, *product.Product]{},
		updateProduct:  &handlerMock[commands.UpdateProductCommand, *product.Product]{},
		createOrder:    &handlerMock[commands.CreateOrderCommand, *order.Order]{},
		updateOrder:    &handlerMock[commands.UpdateOrderCommand, *order.Order]{},
		deleteOrder:    &deleteHandlerMock[commands.DeleteOrderCommand]{},
		listCustomers:  &handlerMock[queries.ListCustomersQuery, []queries.CustomerQueryResponse]{},
		listProducts:   &handlerMock[queries.ListProductsQuery, []queries.ProductQueryResponse]{},
		listOrders:     &handlerMock[queries.ListOrdersQuery, []queries.OrderQueryResponse]{},
		getOrder:       &handlerMock[queries.GetOrderQuery, queries.OrderQueryResponse]{},
		getStats:       &handlerMock[queries.GetStoreStatisticsQuery, queries.StoreStatisticsQueryResponse]{},
	}

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateCustomer:     ts.createCustomer,
		UpdateCustomer:     ts.updateCustomer,
		DeleteCustomer:     ts.deleteCustomer,
		CreateProduct:      ts.createProduct,
		UpdateProduct:      ts.updateProduct,
		CreateOrder:        ts.createOrder,
		UpdateOrder:        ts.updateOrder,
		DeleteOrder:        ts.deleteOrder,
		ListCustomers:      ts.listCustomers,
		ListProducts:       ts.listProducts,
		ListOrders:         ts.listOrders,
		GetOrder:           ts.getOrder,
		GetStoreStatistics: ts.getStats,
	})

	doc, err := api.Load(context.Background())
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e, err := httpadapter.NewRouter(server, doc, logger)
	require.NoError(t, err)
	ts.echo = e

	t.Cleanup(func() {
		ts.createCustomer.AssertExpectations(t)
		ts.updateCustomer.AssertExpectations(t)
		ts.deleteCustomer.AssertExpectations(t)
		ts.createProduct.AssertExpectations(t)
		ts.updateProduct.AssertExpectations(t)
		ts.createOrder.AssertExpectations(t)
		ts.updateOrder.AssertExpectations(t)
		ts.deleteOrder.AssertExpectations(t)
		ts.listCustomers.AssertExpectations(t)
		ts.listProducts.AssertExpectations(t)
		ts.listOrders.AssertExpectations(t)
		ts.getOrder.AssertExpectations(t)
		ts.getStats.AssertExpectations(t)
	})

	return ts
}

// envelope is the decoded response body with data left raw.
type envelope struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (ts *testServer) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	ts.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(target, "/api/") && !strings.HasPrefix(target, "/api/docs/") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func fieldMessages(t *testing.T, env envelope) map[string][]string {
	t.Helper()
	var messages map[string][]string
	require.NoError(t, json.Unmarshal(env.Data, &messages), string(env.Data))
	return messages
}
