package errs

import "errors"

// NonFieldErrors is the key for messages that do not belong to a single field.
const NonFieldErrors = "non_field_errors"

// FieldMessages flattens err into field-keyed messages. It walks joined and
// wrapped errors; typed errors are keyed by their ParamName, a ValidationError
// by its own fields, anything else lands under NonFieldErrors.
func FieldMessages(err error) map[string][]string {
	out := make(map[string][]string)
	collectFieldMessages(err, out)
	return out
}

func collectFieldMessages(err error, out map[string][]string) {
	if err == nil {
		return
	}

	switch e := err.(type) {
	case *ValidationError:
		for field, messages := range e.Messages() {
			out[field] = append(out[field], messages...)
		}
		return
	case *ValueIsInvalidError:
		out[e.ParamName] = append(out[e.ParamName], e.Error())
		return
	case *ValueIsRequiredError:
		out[e.ParamName] = append(out[e.ParamName], e.Error())
		return
	case *ValueIsOutOfRangeError:
		out[e.ParamName] = append(out[e.ParamName], e.Error())
		return
	case *ValueIsDuplicatedError:
		out[e.ParamName] = append(out[e.ParamName], e.Error())
		return
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, inner := range joined.Unwrap() {
			collectFieldMessages(inner, out)
		}
		return
	}

	if inner := errors.Unwrap(err); inner != nil && isTyped(inner) {
		collectFieldMessages(inner, out)
		return
	}

	out[NonFieldErrors] = append(out[NonFieldErrors], err.Error())
}

func isTyped(err error) bool {
	var (
		verr      *ValidationError
		invalid   *ValueIsInvalidError
		required  *ValueIsRequiredError
		outOfRng  *ValueIsOutOfRangeError
		duplicate *ValueIsDuplicatedError
	)
	return errors.As(err, &verr) || errors.As(err, &invalid) || errors.As(err, &required) ||
		errors.As(err, &outOfRng) || errors.As(err, &duplicate)
}

// IsValidation reports whether err is a rule violation that callers should
// see as a bad request rather than a server fault.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsOutOfRange) ||
		errors.Is(err, ErrValueIsDuplicated)
}
