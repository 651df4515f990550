package commands

import (
	"errors"

	"orders/internal/pkg/guard"
)

var ErrDeleteCustomerCommandIsNotConstructed = errors.New(
	"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
)

// DeleteCustomerCommand removes a customer that has no orders.
type DeleteCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID int64

	guard guard.ConstructorGuard
}

func NewDeleteCustomerCommand(customerID int64) (DeleteCustomerCommand, error) {
	cmd := DeleteCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := requireID("id", customerID, &cmd.customerID); err != nil {
		return DeleteCustomerCommand{}, err
	}

	return cmd, nil
}

func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

func (c DeleteCustomerCommand) CustomerID() int64 {
	return c.customerID
}
