package http

import (
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
	"orders/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Envelope messages.
const (
	MessageCreated     = "Data created successfully"
	MessageUpdated     = "Data updated successfully"
	MessageDeleted     = "Data deleted"
	MessageRetrieve    = "Data retrieve"
	MessageBadRequest  = "Bad request"
	MessageNotFound    = "Data not found"
	MessageServerError = "Internal server error"
)

var (
	emptyObject = map[string]any{}
	emptyList   = []any{}
)

func respond(ctx echo.Context, status int, message string, data any) error {
	return ctx.JSON(status, servers.Envelope{
		Code:    status,
		Data:    data,
		Message: message,
	})
}

func customerResponse(c *customer.Customer) servers.Customer {
	return servers.Customer{
		Id:            c.ID(),
		Name:          c.Name(),
		ContactNumber: c.ContactNumber(),
		Email:         c.Email(),
	}
}

func productResponse(p *product.Product) servers.Product {
	return servers.Product{
		Id:     p.ID(),
		Name:   p.Name(),
		Weight: p.Weight().String(),
	}
}

func orderResponse(o queries.OrderQueryResponse) servers.Order {
	items := make([]servers.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = servers.OrderItem{
			Id:       item.ID,
			Order:    item.OrderID,
			Product:  item.ProductID,
			Quantity: item.Quantity,
		}
	}

	return servers.Order{
		Id:          o.ID,
		OrderNumber: o.OrderNumber,
		Customer: servers.Customer{
			Id:            o.Customer.ID,
			Name:          o.Customer.Name,
			ContactNumber: o.Customer.ContactNumber,
			Email:         o.Customer.Email,
		},
		OrderDate:  openapi_types.Date{Time: kernel.DateOf(o.OrderDate).Time()},
		Address:    o.Address,
		OrderItems: items,
	}
}

func orderLines(items []servers.NewOrderItem) []order.Line {
	lines := make([]order.Line, len(items))
	for i, item := range items {
		lines[i] = order.Line{ProductID: item.Product, Quantity: item.Quantity}
	}
	return lines
}
