package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
//
// Example:
//
//	cmd, err := NewCreateCustomerCommand("Alice", "+15550100", "alice@example.com")
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
//	c, err := handler.Handle(ctx, cmd)
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name          string
	contactNumber string
	email         string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand checks that every customer field is present.
// Format and uniqueness are the handler's business.
func NewCreateCustomerCommand(name, contactNumber, email string) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireText("name", name, &cmd.name),
		requireText("contact_number", contactNumber, &cmd.contactNumber),
		requireText("email", email, &cmd.email),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Name() string {
	return c.name
}

func (c CreateCustomerCommand) ContactNumber() string {
	return c.contactNumber
}

func (c CreateCustomerCommand) Email() string {
	return c.email
}

func requireText(param, value string, dst *string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	*dst = value
	return nil
}

func requireID(param string, id int64, dst *int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError(param)
	}
	*dst = id
	return nil
}
