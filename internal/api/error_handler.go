package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cityhousing/housing-units-api/internal/core/domain"
)

// errorResponse is the canonical envelope for domain errors.
type errorResponse struct {
	Detail string `json:"Detail"`
	Type   string `json:"Type"`
}

// frameworkError mirrors the shape used for routing/binding failures.
type frameworkError struct {
	Detail string `json:"detail"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to deterministic HTTP status codes and the
//     {"Detail": <message>, "Type": <kind>} envelope.
//   - Passes echo's own errors (bind failures, 404 from router, validation)
//     through with a lowercase detail body.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var domainErr *domain.Error
		if errors.As(err, &domainErr) {
			_ = c.JSON(statusForKind(domainErr.Kind), errorResponse{
				Detail: domainErr.Message,
				Type:   string(domainErr.Kind),
			})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, frameworkError{Detail: fmt.Sprintf("%v", he.Message)})
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		_ = c.JSON(http.StatusInternalServerError, frameworkError{Detail: "internal server error"})
	}
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindArgument, domain.KindInvalidArgument, domain.KindMissingArgument,
		domain.KindValidation, domain.KindDatasetDownload:
		return http.StatusBadRequest
	case domain.KindAuthentication:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
