package customerrepo

import (
	"context"
	"errors"
	"fmt"

	"orders/internal/core/domain/model/customer"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add inserts the customer and assigns the generated id.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translate(err, aggregate.Name())
	}

	aggregate.AssignID(dto.ID)
	return nil
}

func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("id = ?", dto.ID).
		Select("name", "contact_number", "email").
		Updates(&dto)
	if result.Error != nil {
		return translate(result.Error, aggregate.Name())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", dto.ID)
	}

	return nil
}

func (r *GormCustomerRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&CustomerDTO{}, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			verr := errs.NewValidationError()
			verr.Add("customer", customer.ErrCustomerHasOrders)
			return verr
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", id)
	}

	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormCustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormCustomerRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&CustomerDTO{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// translate turns a unique violation into the same field error the
// validation engine reports for a taken name.
func translate(err error, name string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		verr := errs.NewValidationError()
		verr.Add("name", errs.NewValueIsDuplicatedError("name", name))
		return verr
	}
	return fmt.Errorf("saving customer: %w", err)
}
