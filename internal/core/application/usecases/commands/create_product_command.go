package commands

import (
	"errors"

	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
// The weight bound is checked by the handler so that it is reported together
// with a duplicate name.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name   string
	weight decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(name string, weight decimal.Decimal) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		weight: weight,
		guard:  guard.NewConstructorGuard(),
	}

	if err := requireText("name", name, &cmd.name); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) Weight() decimal.Decimal {
	return c.weight
}
