// Package customerrepo persists customer aggregates with gorm.
package customerrepo

import (
	"orders/internal/core/domain/model/customer"
)

// CustomerDTO maps a customer to the customers table.
type CustomerDTO struct {
	ID            int64 `gorm:"primaryKey"`
	Name          string
	ContactNumber string
	Email         string
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:            c.ID(),
		Name:          c.Name(),
		ContactNumber: c.ContactNumber(),
		Email:         c.Email(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.RestoreCustomer(dto.ID, dto.Name, dto.ContactNumber, dto.Email)
}
