package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates
// together with their items.
type OrderRepository interface {
	// Add persists a new order with its items and assigns store ids.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order details and upserts its items by product.
	// Items are never removed by an update.
	// Returns errs.ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order; its items go with it.
	// Returns errs.ObjectNotFoundError if the order does not exist.
	Delete(ctx context.Context, id int64) error

	// Get retrieves an order with its items by id.
	// Returns errs.ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// LatestNumber returns the number of the most recently inserted order,
	// or nil when there are no orders yet.
	LatestNumber(ctx context.Context) (*order.Number, error)

	// ExistsByCustomer reports whether the customer has any order.
	ExistsByCustomer(ctx context.Context, customerID int64) (bool, error)
}
