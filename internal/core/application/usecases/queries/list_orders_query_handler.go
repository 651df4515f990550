package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads orders with their customers and items in two
// round trips: the orders first, then every item of those orders.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns the matching orders ordered by id, or an empty slice.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	switch {
	case len(query.ProductNames()) > 0:
		return loadOrders(ctx, h.db, `o.id IN (
			SELECT oi.order_id
			FROM order_items oi
			JOIN products p ON p.id = oi.product_id
			WHERE p.name IN ?
		)`, query.ProductNames())
	case query.CustomerName() != "":
		return loadOrders(ctx, h.db, "c.name = ?", query.CustomerName())
	default:
		return loadOrders(ctx, h.db, "TRUE")
	}
}

func loadOrders(ctx context.Context, db *gorm.DB, where string, args ...any) ([]OrderQueryResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.order_date,
			o.address,
			c.id,
			c.name,
			c.contact_number,
			c.email
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE `+where+`
		ORDER BY o.id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderQueryResponse, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var o OrderQueryResponse
		if err = rows.Scan(
			&o.ID,
			&o.OrderNumber,
			&o.OrderDate,
			&o.Address,
			&o.Customer.ID,
			&o.Customer.Name,
			&o.Customer.ContactNumber,
			&o.Customer.Email,
		); err != nil {
			return nil, err
		}
		o.Items = make([]OrderItemQueryResponse, 0)
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	itemRows, err := db.WithContext(ctx).Raw(`
		SELECT id, order_id, product_id, quantity
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item OrderItemQueryResponse
		if err = itemRows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		at := index[item.OrderID]
		orders[at].Items = append(orders[at].Items, item)
	}

	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
