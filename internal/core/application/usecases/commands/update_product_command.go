package commands

import (
	"errors"

	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand replaces the name and weight of an existing product.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID int64
	name      string
	weight    decimal.Decimal

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(productID int64, name string, weight decimal.Decimal) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		weight: weight,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("id", productID, &cmd.productID),
		requireText("name", name, &cmd.name),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() int64 {
	return c.productID
}

func (c UpdateProductCommand) Name() string {
	return c.name
}

func (c UpdateProductCommand) Weight() decimal.Decimal {
	return c.weight
}
