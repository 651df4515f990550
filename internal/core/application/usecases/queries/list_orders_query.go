package queries

import (
	"errors"
	"strings"
	"time"

	"orders/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders, optionally narrowed by product names or by
// customer name. Product names win when both are given.
//
// Example:
//
//	q := NewListOrdersQuery("Widget,Gadget", "")
//	orders, err := handler.Handle(ctx, q) // orders containing a Widget or a Gadget, each once
type ListOrdersQuery struct {
	productNames []string
	customerName string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery builds the query from the raw filter values. products is a
// comma separated list of exact product names; empty entries are ignored.
func NewListOrdersQuery(products, customer string) ListOrdersQuery {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}

	for _, name := range strings.Split(products, ",") {
		if name != "" {
			q.productNames = append(q.productNames, name)
		}
	}

	if len(q.productNames) == 0 {
		q.customerName = customer
	}

	return q
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ProductNames returns the product filter; empty means no product filter.
func (q ListOrdersQuery) ProductNames() []string {
	return append([]string(nil), q.productNames...)
}

// CustomerName returns the customer filter. It is empty whenever a product
// filter is set.
func (q ListOrdersQuery) CustomerName() string {
	return q.customerName
}

// OrderQueryResponse is the read model of an order with its customer and items.
type OrderQueryResponse struct {
	ID          int64
	OrderNumber string
	Customer    CustomerQueryResponse
	OrderDate   time.Time
	Address     string
	Items       []OrderItemQueryResponse
}

type OrderItemQueryResponse struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
}
