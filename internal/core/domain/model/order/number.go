package order

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

const (
	// NumberPrefix starts every order number.
	NumberPrefix = "ORD"

	// NumberWidth is the zero-padded width of the sequence part. Sequences that
	// need more digits widen the number instead of wrapping.
	NumberWidth = 5

	// MaxSequence is the largest sequence that fits the 10 character column.
	MaxSequence = 9_999_999
)

var (
	// ErrNumberIsNotConstructed is returned when a Number was not created through its constructors.
	ErrNumberIsNotConstructed = errors.New("Number must be created via NewNumber, ParseNumber or NextNumber")

	// ErrNumberSpaceExhausted is returned when the next sequence would exceed MaxSequence.
	ErrNumberSpaceExhausted = errors.New("order number space is exhausted")
)

// Number is the human-readable order identifier, "ORD" followed by a positive
// sequence padded to NumberWidth digits: ORD00001, ORD00100, ORD100000.
type Number struct { //nolint:recvcheck //using for validation
	sequence int
	guard    guard.ConstructorGuard
}

// NewNumber builds the number for sequence, which must be in [1, MaxSequence].
func NewNumber(sequence int) (Number, error) {
	if sequence < 1 || sequence > MaxSequence {
		return Number{}, errs.NewValueIsOutOfRangeError("order_number", sequence, 1, MaxSequence)
	}

	return Number{
		sequence: sequence,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ParseNumber reads a stored order number back. The part after NumberPrefix must
// be digits only.
func ParseNumber(s string) (Number, error) {
	digits, ok := strings.CutPrefix(s, NumberPrefix)
	if !ok || digits == "" {
		return Number{}, errs.NewValueIsInvalidErrorWithCause(
			"order_number",
			fmt.Errorf("%q does not start with %s followed by digits", s, NumberPrefix),
		)
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return Number{}, errs.NewValueIsInvalidErrorWithCause(
				"order_number",
				fmt.Errorf("%q has a non-numeric sequence", s),
			)
		}
	}

	sequence, err := strconv.Atoi(digits)
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order_number", err)
	}

	return NewNumber(sequence)
}

// NextNumber returns the number that follows latest, or the first number when
// no order exists yet.
//
// Example:
//
//	first, _ := order.NextNumber(nil)    // ORD00001
//	next, _ := order.NextNumber(&first)  // ORD00002
func NextNumber(latest *Number) (Number, error) {
	if latest == nil {
		return NewNumber(1)
	}

	if err := latest.Validate(); err != nil {
		return Number{}, err
	}

	if latest.sequence >= MaxSequence {
		return Number{}, ErrNumberSpaceExhausted
	}

	return NewNumber(latest.sequence + 1)
}

// Validate reports whether the number was properly constructed.
func (n Number) Validate() error {
	return n.guard.Validate(ErrNumberIsNotConstructed)
}

// Sequence returns the numeric part.
func (n Number) Sequence() int {
	return n.sequence
}

// String formats the number for storage and display.
func (n Number) String() string {
	return fmt.Sprintf("%s%0*d", NumberPrefix, NumberWidth, n.sequence)
}
