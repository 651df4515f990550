package product

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

const NameMaxLength = 200

// ErrProductIsNotConstructed is returned when a Product was not created through
// NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog entry with a unique name and a unit weight.
type Product struct {
	id     int64
	name   string
	weight kernel.Weight
	guard  guard.ConstructorGuard
}

// NewProduct creates an unsaved product.
//
// Example:
//
//	w, _ := kernel.ParseWeight("10.00")
//	p, err := product.NewProduct("Widget", w)
func NewProduct(name string, weight kernel.Weight) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setName(name), p.setWeight(weight)); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a persisted product.
func RestoreProduct(id int64, name string, weight kernel.Weight) (*Product, error) {
	p, err := NewProduct(name, weight)
	if err != nil {
		return nil, err
	}

	p.id = id
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() int64 {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Weight() kernel.Weight {
	return p.weight
}

// AssignID records the id given by the store on insert.
func (p *Product) AssignID(id int64) {
	p.id = id
}

// Change replaces name and weight. On error the product is left as it was.
func (p *Product) Change(name string, weight kernel.Weight) error {
	changed := *p
	if err := errors.Join(changed.setName(name), changed.setWeight(weight)); err != nil {
		return err
	}

	*p = changed
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > NameMaxLength {
		return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("%d characters exceed %d", n, NameMaxLength))
	}
	p.name = name
	return nil
}

func (p *Product) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	p.weight = weight
	return nil
}
