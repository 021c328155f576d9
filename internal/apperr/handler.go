package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// GlobalErrorHandler maps the error taxonomy onto HTTP statuses: invalid
// input is 400, an unreachable or empty corpus is 503, echo's own errors
// keep their code, anything else is logged and becomes a plain 500.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			ve *ValidationError
			ue *UnavailableError
			he *echo.HTTPError
		)
		switch {
		case errors.As(err, &ve):
			respond(c, http.StatusBadRequest, "validation error", ve.Message)
		case errors.As(err, &ue):
			respond(c, http.StatusServiceUnavailable, "data unavailable", ue.Error())
		case errors.As(err, &he):
			_ = c.JSON(he.Code, map[string]string{"error": fmt.Sprintf("%v", he.Message)})
		default:
			slog.Error("Unhandled error", "error", err, "path", c.Request().URL.Path)
			_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		}
	}
}

func respond(c echo.Context, code int, title, message string) {
	_ = c.JSON(code, map[string]string{"error": message, "title": title})
}
