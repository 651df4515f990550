package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order with all of its items and assigns the generated ids.
// A taken order number surfaces as gorm.ErrDuplicatedKey.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	for i := range dto.Items {
		dto.Items[i].ID = 0
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("saving order %s: %w", dto.OrderNumber, err)
	}

	aggregate.AssignID(dto.ID)
	for i, item := range aggregate.Items() {
		item.AssignID(dto.Items[i].ID)
	}

	return nil
}

// Update writes the order details and upserts items on (order_id, product_id).
// Items missing from the aggregate are left in place.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"customer_id": dto.CustomerID,
		"order_date":  dto.OrderDate,
		"address":     dto.Address,
	})
	if result.Error != nil {
		return fmt.Errorf("saving order %s: %w", dto.OrderNumber, result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	if len(dto.Items) == 0 {
		return nil
	}

	for i := range dto.Items {
		dto.Items[i].ID = 0
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}, {Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
	}).Create(&dto.Items).Error
	if err != nil {
		return fmt.Errorf("saving items of order %s: %w", dto.OrderNumber, err)
	}

	for i, item := range aggregate.Items() {
		item.AssignID(dto.Items[i].ID)
	}

	return nil
}

// Delete removes the order; the schema cascades to its items.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}

	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// LatestNumber reads the number of the order with the highest id.
func (r *GormOrderRepository) LatestNumber(ctx context.Context) (*order.Number, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Select("id", "order_number").Order("id DESC").Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	number, err := order.ParseNumber(dto.OrderNumber)
	if err != nil {
		return nil, fmt.Errorf("latest order %d: %w", dto.ID, err)
	}

	return &number, nil
}

func (r *GormOrderRepository) ExistsByCustomer(ctx context.Context, customerID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("customer_id = ?", customerID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
