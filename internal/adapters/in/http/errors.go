package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"orders/internal/generated/servers"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrMalformedRequest marks a body that could not be decoded.
var ErrMalformedRequest = errors.New("malformed request")

// bind decodes the request body into dst and checks its shape.
func bind(ctx echo.Context, dst any) error {
	if err := ctx.Bind(dst); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return fmt.Errorf("%w: %v", ErrMalformedRequest, he.Message)
		}
		return fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}

	return ctx.Validate(dst)
}

// fail renders expected failures: missing objects as 404 with empty, rule
// violations and malformed requests as 400 with field keyed messages.
// Anything else goes to the echo error handler.
func fail(ctx echo.Context, err error, empty any) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, empty)
	case errs.IsValidation(err), errors.Is(err, ErrMalformedRequest):
		return respond(ctx, http.StatusBadRequest, MessageBadRequest, errs.FieldMessages(err))
	default:
		return err
	}
}

func notFound(ctx echo.Context, empty any) error {
	return respond(ctx, http.StatusNotFound, MessageNotFound, empty)
}

// NewErrorHandler renders errors that escaped the handlers in the response
// envelope. Unexpected errors are logged and reported without detail.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := MessageServerError
		var data any = emptyObject

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			switch status {
			case http.StatusBadRequest:
				message = MessageBadRequest
				data = map[string][]string{errs.NonFieldErrors: {fmt.Sprint(he.Message)}}
			case http.StatusNotFound:
				message = MessageNotFound
			default:
				message = http.StatusText(status)
			}
		} else {
			logger.ErrorContext(ctx.Request().Context(), "request failed",
				slog.String("method", ctx.Request().Method),
				slog.String("path", ctx.Path()),
				slog.Any("error", err),
			)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(status)
		} else {
			err = ctx.JSON(status, servers.Envelope{Code: status, Data: data, Message: message})
		}
		if err != nil {
			logger.ErrorContext(ctx.Request().Context(), "writing error response", slog.Any("error", err))
		}
	}
}
