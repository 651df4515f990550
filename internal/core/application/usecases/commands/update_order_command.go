package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand replaces the order details and upserts its items by
// product. Items not named in the command stay as they are.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	customerID int64
	date       kernel.Date
	address    string
	lines      []order.Line

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(
	orderID int64,
	customerID int64,
	date kernel.Date,
	address string,
	lines []order.Line,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("id", orderID, &cmd.orderID),
		requireID("customer", customerID, &cmd.customerID),
		requireDate(date, &cmd.date),
		requireText("address", address, &cmd.address),
		requireLines(lines, &cmd.lines),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c UpdateOrderCommand) CustomerID() int64 {
	return c.customerID
}

func (c UpdateOrderCommand) Date() kernel.Date {
	return c.date
}

func (c UpdateOrderCommand) Address() string {
	return c.address
}

func (c UpdateOrderCommand) Lines() []order.Line {
	return append([]order.Line(nil), c.lines...)
}
