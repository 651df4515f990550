package kernel

import (
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// WeightScale is the number of fraction digits a weight may carry.
const WeightScale int32 = 2

var (
	// WeightMin is the lightest product weight accepted.
	WeightMin = decimal.Zero
	// WeightMax is the heaviest product weight accepted.
	WeightMax = decimal.NewFromInt(25)
)

// ErrWeightIsNotConstructed is returned when a Weight was not created through NewWeight or ParseWeight.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight or ParseWeight constructors")

// Weight is the weight of a single product unit, a decimal in [WeightMin, WeightMax]
// with at most WeightScale fraction digits. Arithmetic stays in decimal so sums of
// line weights compare exactly against order limits.
//
// Example:
//
//	w, err := kernel.ParseWeight("10.50")
//	if err != nil {
//	    return err
//	}
//	line := w.Times(3) // 31.50
type Weight struct { //nolint:recvcheck //using for validation
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewWeight validates value against the weight bounds and scale.
func NewWeight(value decimal.Decimal) (Weight, error) {
	if value.LessThan(WeightMin) || value.GreaterThan(WeightMax) {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", value.String(), WeightMin.String(), WeightMax.String())
	}

	if !value.Equal(value.Round(WeightScale)) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%s has more than %d decimal places", value.String(), WeightScale),
		)
	}

	return Weight{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ParseWeight parses a decimal string such as "10.5" and validates it with NewWeight.
func ParseWeight(s string) (Weight, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", err)
	}
	return NewWeight(value)
}

// Validate reports whether the weight was properly constructed.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Decimal returns the weight value.
func (w Weight) Decimal() decimal.Decimal {
	return w.value
}

// Times returns the weight of quantity units.
func (w Weight) Times(quantity int) decimal.Decimal {
	return w.value.Mul(decimal.NewFromInt(int64(quantity)))
}

// Equal compares two weights by value, ignoring trailing zeros.
func (w Weight) Equal(other Weight) bool {
	return w.value.Equal(other.value)
}

// String formats the weight with exactly WeightScale fraction digits.
func (w Weight) String() string {
	return w.value.StringFixed(WeightScale)
}
