package commands

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/product"
	"orders/internal/core/domain/services"
)

// UpdateProductCommandHandler changes products. Orders that already contain the
// product are not revalidated against the new weight.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	engine     services.ValidationEngine
}

func NewUpdateProductCommandHandler(
	uowFactory ProductUoWFactory,
	engine services.ValidationEngine,
) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
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
	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	taken, err := productRepo.ExistsByName(ctx, cmd.Name(), cmd.ProductID())
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

	if err = p.Change(cmd.Name(), weight); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
