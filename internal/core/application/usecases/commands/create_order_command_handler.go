package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
)

// CreateOrderCommandHandler places orders. Validation, number generation and the
// insert of the order with all of its items share one transaction.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	engine     services.ValidationEngine
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, engine services.ValidationEngine) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

// Handle validates the order against the store, assigns the next order number
// and persists the order. Nothing is written when any check fails.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	customerExists, err := uow.CustomerRepository().Exists(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	lines := cmd.Lines()
	products, err := uow.ProductRepository().GetMany(ctx, productIDs(lines))
	if err != nil {
		return nil, err
	}

	if err = h.engine.ValidateOrder(services.OrderInput{
		CustomerID:     cmd.CustomerID(),
		CustomerExists: customerExists,
		Date:           cmd.Date(),
		Lines:          lines,
		Products:       products,
	}); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	latest, err := orderRepo.LatestNumber(ctx)
	if err != nil {
		return nil, err
	}

	number, err := order.NextNumber(latest)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(lines))
	for _, line := range lines {
		item, err := order.NewItem(line.ProductID, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(number, cmd.CustomerID(), cmd.Date(), cmd.Address(), items)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
