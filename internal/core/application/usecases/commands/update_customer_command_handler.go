package commands

import (
	"context"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/services"
)

// UpdateCustomerCommandHandler changes customer details, keeping names unique.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	engine     services.ValidationEngine
}

func NewUpdateCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	engine services.ValidationEngine,
) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

// Handle loads the customer, checks the new name against every other customer
// and saves the change. A missing customer yields errs.ObjectNotFoundError.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	c, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	taken, err := customerRepo.ExistsByName(ctx, cmd.Name(), cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if err = h.engine.ValidateCustomer(cmd.Name(), taken); err != nil {
		return nil, err
	}

	if err = c.Change(cmd.Name(), cmd.ContactNumber(), cmd.Email()); err != nil {
		return nil, err
	}

	if err = customerRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
