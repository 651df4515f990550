package commands

import (
	"context"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/services"
)

// CreateCustomerCommandHandler registers customers with unique names.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	engine     services.ValidationEngine
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	engine services.ValidationEngine,
) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

// Handle checks the name is free, builds the customer and stores it in one transaction.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
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
	taken, err := customerRepo.ExistsByName(ctx, cmd.Name(), 0)
	if err != nil {
		return nil, err
	}

	if err = h.engine.ValidateCustomer(cmd.Name(), taken); err != nil {
		return nil, err
	}

	c, err := customer.NewCustomer(cmd.Name(), cmd.ContactNumber(), cmd.Email())
	if err != nil {
		return nil, err
	}

	if err = customerRepo.Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
