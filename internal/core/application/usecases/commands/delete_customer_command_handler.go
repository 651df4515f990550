package commands

import (
	"context"

	"orders/internal/core/domain/model/customer"
	"orders/internal/pkg/errs"
)

// DeleteCustomerCommandHandler removes customers. Orders are never deleted
// together with their customer.
type DeleteCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewDeleteCustomerCommandHandler(uowFactory CustomerUoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the customer or fails with errs.ObjectNotFoundError when it does
// not exist, or with a validation error when it still has orders.
func (h *DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	if _, err := customerRepo.Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	hasOrders, err := uow.OrderRepository().ExistsByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if hasOrders {
		verr := errs.NewValidationError()
		verr.Add("customer", customer.ErrCustomerHasOrders)
		return verr
	}

	if err = customerRepo.Delete(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
