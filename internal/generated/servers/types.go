// Package servers holds the transport types and echo routing for the HTTP
// contract in api/openapi.yml. It follows the shape oapi-codegen emits for
// echo servers so handlers only see typed path and query parameters.
package servers

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Envelope wraps every response body. Code mirrors the HTTP status.
type Envelope struct {
	Code    int    `json:"code"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// Customer defines model for Customer.
type Customer struct {
	Id            int64  `json:"id"`
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
}

// NewCustomer defines model for NewCustomer.
type NewCustomer struct {
	Name          string `json:"name" validate:"required"`
	ContactNumber string `json:"contact_number" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
}

// Product defines model for Product. Weight is rendered with two fraction digits.
type Product struct {
	Id     int64  `json:"id"`
	Name   string `json:"name"`
	Weight string `json:"weight"`
}

// NewProduct defines model for NewProduct. Weight accepts a JSON number or a
// decimal string.
type NewProduct struct {
	Name   string           `json:"name" validate:"required"`
	Weight *decimal.Decimal `json:"weight" validate:"required"`
}

// Order defines model for Order.
type Order struct {
	Id          int64              `json:"id"`
	OrderNumber string             `json:"order_number"`
	Customer    Customer           `json:"customer"`
	OrderDate   openapi_types.Date `json:"order_date"`
	Address     string             `json:"address"`
	OrderItems  []OrderItem        `json:"order_items"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	Id       int64 `json:"id"`
	Order    int64 `json:"order"`
	Product  int64 `json:"product"`
	Quantity int   `json:"quantity"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Customer   int64               `json:"customer" validate:"required"`
	OrderDate  *openapi_types.Date `json:"order_date" validate:"required"`
	Address    string              `json:"address" validate:"required"`
	OrderItems []NewOrderItem      `json:"order_items" validate:"dive"`
}

// NewOrderItem defines model for NewOrderItem.
type NewOrderItem struct {
	Product  int64 `json:"product" validate:"required"`
	Quantity int   `json:"quantity" validate:"required,min=1,max=2147483647"`
}

// StoreStatistics defines model for StoreStatistics.
type StoreStatistics struct {
	Customers         int64  `json:"customers"`
	Products          int64  `json:"products"`
	Orders            int64  `json:"orders"`
	OrderItems        int64  `json:"order_items"`
	TotalWeight       string `json:"total_weight"`
	LatestOrderNumber string `json:"latest_order_number"`
}

// Id defines model for Id.
type Id = int64

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	// Products is a comma separated list of product names.
	Products *string `form:"products,omitempty" json:"products,omitempty"`

	// Customer is an exact customer name.
	Customer *string `form:"customer,omitempty" json:"customer,omitempty"`
}
