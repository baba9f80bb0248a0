package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/salesdesk/leads-service/internal/core/domain"
)

const unexpectedErrorMessage = "An unexpected error occurred."

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// unhandledErrorResponse is rendered for failures no handler accounted for.
type unhandledErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders Echo's own errors (router 404/405, bind failures) with their code.
//   - Maps known domain errors to their HTTP status codes.
//   - Logs anything else and answers 500 with the failure message.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)})
			return
		}

		if code, msg, ok := domainError(err); ok {
			_ = c.JSON(code, errorResponse{Error: msg})
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		msg := err.Error()
		if msg == "" {
			msg = unexpectedErrorMessage
		}
		_ = c.JSON(http.StatusInternalServerError, unhandledErrorResponse{
			Error:   "Internal Server Error",
			Message: msg,
		})
	}
}

func domainError(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrLeadNotFound):
		return http.StatusNotFound, "Lead not found", true
	case errors.Is(err, domain.ErrInvalidSource):
		return http.StatusBadRequest, "Invalid source. Supported sources are: " + domain.SourceList(), true
	case errors.Is(err, domain.ErrInvalidStage):
		return http.StatusBadRequest, "Invalid stage. Supported stages are: " + domain.StageList(), true
	case errors.Is(err, domain.ErrInvalidOwner):
		return http.StatusBadRequest, "Invalid owner. A valid string is required.", true
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, err.Error(), true
	}
	return 0, "", false
}
