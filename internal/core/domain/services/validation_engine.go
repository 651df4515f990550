package services

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxOrderWeight is the heaviest order accepted, inclusive.
var MaxOrderWeight = decimal.NewFromInt(150)

var (
	// ErrOrderDateInPast is recorded under order_date when the date is before today.
	ErrOrderDateInPast = errors.New("date must not be in the past")

	// ErrDuplicateProduct is recorded under order_items when a write names a product twice.
	ErrDuplicateProduct = errors.New("duplicate product in order")

	// ErrOrderWeightLimitExceeded is recorded under order_items when the items weigh more than MaxOrderWeight.
	ErrOrderWeightLimitExceeded = errors.New("order weight limit exceeded")
)

// OrderInput is everything ValidateOrder needs about one order write. The caller
// loads it inside the write's transaction.
type OrderInput struct {
	// CustomerID is the referenced customer and CustomerExists whether it resolved.
	CustomerID     int64
	CustomerExists bool

	// Date is the requested order date.
	Date kernel.Date

	// Lines are the items sent with this write.
	Lines []order.Line

	// Current are the items the order already has. Empty on create.
	Current []order.Line

	// Products holds every product referenced by Lines or Current, by id.
	Products map[int64]*product.Product
}

// ValidationEngine is the gate every customer, product and order write passes
// before it is persisted. It holds no state besides the clock and never touches
// the store: callers load what it needs and pass it in.
//
// Missing references fail fast with errs.ObjectNotFoundError. All other rule
// violations of one write are collected into a single errs.ValidationError keyed
// by request field.
//
// Example:
//
//	engine := services.NewValidationEngine(time.Now)
//	err := engine.ValidateOrder(services.OrderInput{
//	    CustomerID:     7,
//	    CustomerExists: true,
//	    Date:           date,
//	    Lines:          []order.Line{{ProductID: 1, Quantity: 10}},
//	    Products:       map[int64]*product.Product{1: widget},
//	})
type ValidationEngine struct {
	now func() time.Time
}

// NewValidationEngine creates an engine reading today's date from now.
// A nil now means time.Now.
func NewValidationEngine(now func() time.Time) ValidationEngine {
	if now == nil {
		now = time.Now
	}
	return ValidationEngine{now: now}
}

// Today returns the date order dates are compared against.
func (e ValidationEngine) Today() kernel.Date {
	return kernel.DateOf(e.now())
}

// ValidateCustomer checks the uniqueness of a customer name. nameTaken reports
// whether another customer already uses name.
func (e ValidationEngine) ValidateCustomer(name string, nameTaken bool) error {
	verr := errs.NewValidationError()
	if nameTaken {
		verr.Add("name", errs.NewValueIsDuplicatedError("name", name))
	}
	return verr.ErrOrNil()
}

// ValidateProduct checks the uniqueness of a product name and the weight bounds.
func (e ValidationEngine) ValidateProduct(name string, weight decimal.Decimal, nameTaken bool) error {
	verr := errs.NewValidationError()
	if nameTaken {
		verr.Add("name", errs.NewValueIsDuplicatedError("name", name))
	}
	if _, err := kernel.NewWeight(weight); err != nil {
		verr.Add("weight", err)
	}
	return verr.ErrOrNil()
}

// ValidateOrder checks references, date, per-order product uniqueness and the
// cumulative weight of the items the order will have after the write.
func (e ValidationEngine) ValidateOrder(in OrderInput) error {
	if !in.CustomerExists {
		return errs.NewObjectNotFoundError("customer", in.CustomerID)
	}

	merged := order.MergeLines(in.Current, in.Lines)
	for _, line := range merged {
		if _, ok := in.Products[line.ProductID]; !ok {
			return errs.NewObjectNotFoundError("product", line.ProductID)
		}
	}

	verr := errs.NewValidationError()

	if err := in.Date.Validate(); err != nil {
		verr.Add("order_date", err)
	} else if in.Date.Before(e.Today()) {
		verr.Add("order_date", ErrOrderDateInPast)
	}

	seen := make(map[int64]struct{}, len(in.Lines))
	for _, line := range in.Lines {
		if _, dup := seen[line.ProductID]; dup {
			verr.Add("order_items", fmt.Errorf("%w: %d", ErrDuplicateProduct, line.ProductID))
			continue
		}
		seen[line.ProductID] = struct{}{}
	}

	total := TotalWeight(merged, in.Products)
	if total.GreaterThan(MaxOrderWeight) {
		verr.Add("order_items", fmt.Errorf("%w: total weight %s exceeds %s",
			ErrOrderWeightLimitExceeded, total.StringFixed(kernel.WeightScale), MaxOrderWeight.String()))
	}

	return verr.ErrOrNil()
}

// TotalWeight sums quantity times unit weight over lines. Lines whose product is
// missing from products count as zero.
func TotalWeight(lines []order.Line, products map[int64]*product.Product) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		p, ok := products[line.ProductID]
		if !ok {
			continue
		}
		total = total.Add(p.Weight().Times(line.Quantity))
	}
	return total
}
