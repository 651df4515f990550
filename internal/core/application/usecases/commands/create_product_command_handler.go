package commands

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/product"
	"orders/internal/core/domain/services"
)

// CreateProductCommandHandler adds products with unique names and bounded weights.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	engine     services.ValidationEngine
}

func NewCreateProductCommandHandler(
	uowFactory ProductUoWFactory,
	engine services.ValidationEngine,
) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
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

	productRepo := uow.ProductRepository()
	taken, err := productRepo.ExistsByName(ctx, cmd.Name(), 0)
	if err != nil {
		return nil, err
	}

	if err = h.engine.ValidateProduct(cmd.Name(), cmd.Weight(), taken); err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight(cmd.Weight())
	if err != nil {
		return nil, err
	}

	p, err := product.NewProduct(cmd.Name(), weight)
	if err != nil {
		return nil, err
	}

	if err = productRepo.Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
