// Package productrepo persists product aggregates with gorm.
package productrepo

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO maps a product to the products table.
type ProductDTO struct {
	ID     int64 `gorm:"primaryKey"`
	Name   string
	Weight decimal.Decimal `gorm:"type:numeric(5,2)"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:     p.ID(),
		Name:   p.Name(),
		Weight: p.Weight().Decimal(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}
	return product.RestoreProduct(dto.ID, dto.Name, weight)
}
