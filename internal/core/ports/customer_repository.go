// Package ports defines repository interfaces for the order management domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"orders/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer and assigns its store id.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer.
	// Returns errs.ObjectNotFoundError if the customer does not exist.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Delete removes a customer. Customers that still have orders cannot be removed;
	// callers check OrderRepository.ExistsByCustomer first and the store
	// rejects the delete otherwise.
	Delete(ctx context.Context, id int64) error

	// Get retrieves a customer by id.
	// Returns errs.ObjectNotFoundError if the customer does not exist.
	Get(ctx context.Context, id int64) (*customer.Customer, error)

	// Exists reports whether a customer with id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// ExistsByName reports whether a customer other than excludeID uses name.
	// Pass 0 as excludeID when creating.
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
}
