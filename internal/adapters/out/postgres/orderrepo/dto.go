// Package orderrepo persists order aggregates and their items with gorm.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderDTO maps an order to the orders table. Items live in order_items and
// are removed with the order.
type OrderDTO struct {
	ID          int64 `gorm:"primaryKey"`
	OrderNumber string
	CustomerID  int64
	OrderDate   time.Time `gorm:"type:date"`
	Address     string
	Items       []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO maps one order line to order_items.
type OrderItemDTO struct {
	ID        int64 `gorm:"primaryKey"`
	OrderID   int64
	ProductID int64
	Quantity  int
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID(),
			OrderID:   o.ID(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:          o.ID(),
		OrderNumber: o.Number().String(),
		CustomerID:  o.CustomerID(),
		OrderDate:   o.Date().Time(),
		Address:     o.Address(),
		Items:       items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	number, err := order.ParseNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := order.RestoreItem(itemDTO.ID, itemDTO.ProductID, itemDTO.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(dto.ID, number, dto.CustomerID, kernel.DateOf(dto.OrderDate), dto.Address, items)
}
