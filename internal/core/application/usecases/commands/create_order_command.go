package commands

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place an order with its line items.
// The order number is never part of the request; the handler generates it.
//
// Example:
//
//	date, _ := kernel.ParseDate("2026-10-20")
//	cmd, err := NewCreateOrderCommand(7, date, "1 Main St", []order.Line{
//	    {ProductID: 1, Quantity: 10},
//	    {ProductID: 2, Quantity: 9},
//	})
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID int64
	date       kernel.Date
	address    string
	lines      []order.Line

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks the shape of the request. Duplicate products are
// left for the handler so they are reported with the other rule violations.
func NewCreateOrderCommand(
	customerID int64,
	date kernel.Date,
	address string,
	lines []order.Line,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("customer", customerID, &cmd.customerID),
		requireDate(date, &cmd.date),
		requireText("address", address, &cmd.address),
		requireLines(lines, &cmd.lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

func (c CreateOrderCommand) Date() kernel.Date {
	return c.date
}

func (c CreateOrderCommand) Address() string {
	return c.address
}

// Lines returns a copy of the requested line items.
func (c CreateOrderCommand) Lines() []order.Line {
	return append([]order.Line(nil), c.lines...)
}

func requireDate(date kernel.Date, dst *kernel.Date) error {
	if err := date.Validate(); err != nil {
		return errs.NewValueIsRequiredError("order_date")
	}
	*dst = date
	return nil
}

func requireLines(lines []order.Line, dst *[]order.Line) error {
	var problems []error
	for i, line := range lines {
		if line.ProductID <= 0 {
			problems = append(problems, errs.NewValueIsRequiredErrorWithCause(
				"order_items", fmt.Errorf("item %d has no product", i)))
		}
		if line.Quantity <= 0 {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"order_items", fmt.Errorf("item %d quantity %d is not greater than 0", i, line.Quantity)))
		}
	}

	if err := errors.Join(problems...); err != nil {
		return err
	}

	*dst = append([]order.Line(nil), lines...)
	return nil
}

// productIDs lists the distinct products of the given line sets in first-seen order.
func productIDs(sets ...[]order.Line) []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, lines := range sets {
		for _, line := range lines {
			if _, ok := seen[line.ProductID]; ok {
				continue
			}
			seen[line.ProductID] = struct{}{}
			ids = append(ids, line.ProductID)
		}
	}
	return ids
}
