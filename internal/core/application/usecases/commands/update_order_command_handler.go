package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
)

// UpdateOrderCommandHandler changes an order and upserts its items. The order
// number never changes.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	engine     services.ValidationEngine
}

func NewUpdateOrderCommandHandler(uowFactory UoWFactory, engine services.ValidationEngine) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

// Handle loads the order, validates the item set it would have after the upsert
// and saves it. A missing order yields errs.ObjectNotFoundError.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	customerExists, err := uow.CustomerRepository().Exists(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	current := o.Lines()
	lines := cmd.Lines()
	products, err := uow.ProductRepository().GetMany(ctx, productIDs(current, lines))
	if err != nil {
		return nil, err
	}

	if err = h.engine.ValidateOrder(services.OrderInput{
		CustomerID:     cmd.CustomerID(),
		CustomerExists: customerExists,
		Date:           cmd.Date(),
		Lines:          lines,
		Current:        current,
		Products:       products,
	}); err != nil {
		return nil, err
	}

	if err = o.ChangeDetails(cmd.CustomerID(), cmd.Date(), cmd.Address()); err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err = o.UpsertItem(line.ProductID, line.Quantity); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
