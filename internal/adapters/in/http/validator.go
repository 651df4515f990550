package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"orders/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// RequestValidator checks request bodies against their validate tags and
// reports violations keyed by the top level JSON field.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := errs.NewValidationError()
	for _, fe := range fieldErrs {
		// Namespace is "NewOrder.order_items[0].quantity"; drop the type name.
		_, path, _ := strings.Cut(fe.Namespace(), ".")
		field := path
		if i := strings.IndexAny(path, ".["); i >= 0 {
			field = path[:i]
		}

		switch fe.Tag() {
		case "required":
			verr.Add(field, errs.NewValueIsRequiredError(path))
		case "min":
			verr.Add(field, errs.NewValueIsInvalidErrorWithCause(path, fmt.Errorf("must be at least %s", fe.Param())))
		case "max":
			verr.Add(field, errs.NewValueIsInvalidErrorWithCause(path, fmt.Errorf("must be at most %s", fe.Param())))
		default:
			verr.Add(field, errs.NewValueIsInvalidErrorWithCause(path, fmt.Errorf("must be a valid %s", fe.Tag())))
		}
	}

	return verr
}
