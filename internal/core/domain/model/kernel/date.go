package kernel

import (
	"time"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// DateLayout is the wire and storage format of a calendar date.
const DateLayout = time.DateOnly

// ErrDateIsNotConstructed is returned when a Date was not created through its constructors.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError(
	"date must be created via NewDate, DateOf or ParseDate constructors")

// Date is a calendar date without time of day. It is stored as midnight UTC so
// that two dates compare by day regardless of where they were produced.
type Date struct { //nolint:recvcheck //using for validation
	t     time.Time
	guard guard.ConstructorGuard
}

// NewDate builds a date from its components. Out of range components are
// normalized the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{
		t:     time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		guard: guard.NewConstructorGuard(),
	}
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return DateOf(t), nil
}

// Validate reports whether the date was properly constructed.
func (d Date) Validate() error {
	return d.guard.Validate(ErrDateIsNotConstructed)
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return d.t
}

// Before reports whether d is an earlier day than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// Equal reports whether d and other are the same day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}
