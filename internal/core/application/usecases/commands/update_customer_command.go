package commands

import (
	"errors"

	"orders/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand replaces all details of an existing customer.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID    int64
	name          string
	contactNumber string
	email         string

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(customerID int64, name, contactNumber, email string) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("id", customerID, &cmd.customerID),
		requireText("name", name, &cmd.name),
		requireText("contact_number", contactNumber, &cmd.contactNumber),
		requireText("email", email, &cmd.email),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return cmd, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() int64 {
	return c.customerID
}

func (c UpdateCustomerCommand) Name() string {
	return c.name
}

func (c UpdateCustomerCommand) ContactNumber() string {
	return c.contactNumber
}

func (c UpdateCustomerCommand) Email() string {
	return c.email
}
