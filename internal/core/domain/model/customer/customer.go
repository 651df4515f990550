package customer

import (
	"errors"
	"fmt"
	"net/mail"
	"unicode/utf8"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

const (
	NameMaxLength          = 200
	ContactNumberMaxLength = 15
	EmailMaxLength         = 254
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created through
// NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// ErrCustomerHasOrders is reported under customer when a delete would leave
// orders without their customer.
var ErrCustomerHasOrders = errors.New("customer has orders and cannot be deleted")

// Customer is a person who places orders. Names are unique across customers;
// that rule needs the store and is checked by services.ValidationEngine.
type Customer struct {
	id            int64
	name          string
	contactNumber string
	email         string
	guard         guard.ConstructorGuard
}

// NewCustomer creates an unsaved customer.
func NewCustomer(name, contactNumber, email string) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := c.set(name, contactNumber, email); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a persisted customer.
func RestoreCustomer(id int64, name, contactNumber, email string) (*Customer, error) {
	c, err := NewCustomer(name, contactNumber, email)
	if err != nil {
		return nil, err
	}

	c.id = id
	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() int64 {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) ContactNumber() string {
	return c.contactNumber
}

func (c *Customer) Email() string {
	return c.email
}

// AssignID records the id given by the store on insert.
func (c *Customer) AssignID(id int64) {
	c.id = id
}

// Change replaces all customer details. On error the customer is left as it was.
func (c *Customer) Change(name, contactNumber, email string) error {
	changed := *c
	if err := changed.set(name, contactNumber, email); err != nil {
		return err
	}

	*c = changed
	return nil
}

func (c *Customer) set(name, contactNumber, email string) error {
	return errors.Join(
		c.setName(name),
		c.setContactNumber(contactNumber),
		c.setEmail(email),
	)
}

func (c *Customer) setName(name string) error {
	if err := checkText("name", name, NameMaxLength); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Customer) setContactNumber(contactNumber string) error {
	if err := checkText("contact_number", contactNumber, ContactNumberMaxLength); err != nil {
		return err
	}
	c.contactNumber = contactNumber
	return nil
}

func (c *Customer) setEmail(email string) error {
	if err := checkText("email", email, EmailMaxLength); err != nil {
		return err
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}

	c.email = email
	return nil
}

func checkText(param, value string, maxLength int) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	if n := utf8.RuneCountInString(value); n > maxLength {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%d characters exceed %d", n, maxLength))
	}
	return nil
}
