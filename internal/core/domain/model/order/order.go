package order

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// AddressMaxLength is the longest delivery address accepted.
const AddressMaxLength = 300

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a customer's purchase: a generated number, the
// ordering customer, the requested date, the delivery address and its items.
//
// Order follows these invariants:
//   - The number is assigned once at creation and never changes
//   - Every item has a positive quantity
//   - A product appears in at most one item
//   - Can only be created through NewOrder or RestoreOrder
//
// Rules that need data from outside the aggregate (the date relative to today,
// customer and product existence, the cumulative weight limit) are checked by
// services.ValidationEngine before the aggregate is built or changed.
type Order struct {
	// id is the store id, 0 until the order is saved
	id int64

	// number is the human-readable identifier
	number Number

	// customerID references the ordering customer
	customerID int64

	// date is the requested order date
	date kernel.Date

	// address is where the order goes
	address string

	// items are the order lines, unique by product
	items []*Item

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an unsaved order.
//
// Example:
//
//	number, _ := order.NextNumber(latest)
//	date, _ := kernel.ParseDate("2026-10-20")
//	item, _ := order.NewItem(productID, 3)
//	o, err := order.NewOrder(number, customerID, date, "221B Baker Street", []*order.Item{item})
func NewOrder(number Number, customerID int64, date kernel.Date, address string, items []*Item) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setDate(date),
		o.setAddress(address),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order with its items.
func RestoreOrder(
	id int64,
	number Number,
	customerID int64,
	date kernel.Date,
	address string,
	items []*Item,
) (*Order, error) {
	o, err := NewOrder(number, customerID, date, address, items)
	if err != nil {
		return nil, err
	}

	o.id = id
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// ID returns the store id, 0 until the order is saved.
func (o *Order) ID() int64 {
	return o.id
}

// Number returns the order number.
func (o *Order) Number() Number {
	return o.number
}

// CustomerID returns the id of the ordering customer.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// Date returns the requested order date.
func (o *Order) Date() kernel.Date {
	return o.date
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Items returns the order lines. The slice is a copy; items themselves are shared.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Lines returns the order lines as product and quantity pairs.
func (o *Order) Lines() []Line {
	lines := make([]Line, 0, len(o.items))
	for _, item := range o.items {
		lines = append(lines, item.Line())
	}
	return lines
}

// Item returns the line for productID, if any.
func (o *Order) Item(productID int64) (*Item, bool) {
	for _, item := range o.items {
		if item.productID == productID {
			return item, true
		}
	}
	return nil, false
}

// AssignID records the id given by the store on insert.
func (o *Order) AssignID(id int64) {
	o.id = id
}

// ChangeDetails replaces the customer, date and address. The number is kept.
func (o *Order) ChangeDetails(customerID int64, date kernel.Date, address string) error {
	changed := *o
	if err := errors.Join(
		changed.setCustomerID(customerID),
		changed.setDate(date),
		changed.setAddress(address),
	); err != nil {
		return err
	}

	o.customerID = changed.customerID
	o.date = changed.date
	o.address = changed.address
	return nil
}

// UpsertItem sets the quantity of the line for productID, adding the line if
// the product is not in the order yet.
func (o *Order) UpsertItem(productID int64, quantity int) error {
	if existing, ok := o.Item(productID); ok {
		return existing.setQuantity(quantity)
	}

	item, err := NewItem(productID, quantity)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	o.date = date
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if n := utf8.RuneCountInString(address); n > AddressMaxLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"address",
			fmt.Errorf("%d characters exceed %d", n, AddressMaxLength),
		)
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []*Item) error {
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.productID]; dup {
			return errs.NewValueIsDuplicatedError("product", item.productID)
		}
		seen[item.productID] = struct{}{}
	}

	o.items = items
	return nil
}
