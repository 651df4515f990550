package ports

import (
	"context"

	"orders/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product and assigns its store id.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	// Returns errs.ObjectNotFoundError if the product does not exist.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by id.
	// Returns errs.ObjectNotFoundError if the product does not exist.
	Get(ctx context.Context, id int64) (*product.Product, error)

	// GetMany retrieves the products with the given ids, keyed by id.
	// Ids without a product are absent from the result; this is not an error.
	GetMany(ctx context.Context, ids []int64) (map[int64]*product.Product, error)

	// ExistsByName reports whether a product other than excludeID uses name.
	// Pass 0 as excludeID when creating.
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
}
