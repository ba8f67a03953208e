package http

import (
	"errors"
	"net/http"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse is the uniform error body. Error is a stable machine-readable
// kind; Message is for humans and may change wording freely.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// respondError maps a use case error onto an HTTP status and a stable error
// kind. Unrecognized errors become an opaque 500 so internals never leak.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{
			Error: "not_found", Message: err.Error(),
		})

	case errors.Is(err, services.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{
			Error: "forbidden", Message: err.Error(),
		})

	case errors.Is(err, shipment.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, errorResponse{
			Error: "invalid_transition", Message: err.Error(),
		})

	case errors.Is(err, commands.ErrJobAlreadyTaken):
		return c.JSON(http.StatusConflict, errorResponse{
			Error: "already_taken", Message: err.Error(),
		})

	case errors.Is(err, commands.ErrDriverHasActiveJob):
		return c.JSON(http.StatusConflict, errorResponse{
			Error: "conflict_active_job", Message: err.Error(),
		})

	case errors.Is(err, commands.ErrInvoiceNotYetAvailable):
		return c.JSON(http.StatusConflict, errorResponse{
			Error: "invoice_not_available", Message: err.Error(),
		})

	case errors.Is(err, shipment.ErrInvoiceAlreadyPaid):
		return c.JSON(http.StatusConflict, errorResponse{
			Error: "already_paid", Message: err.Error(),
		})

	case errors.Is(err, errs.ErrDependencyFailed):
		return c.JSON(http.StatusBadGateway, errorResponse{
			Error: "dependency_failure", Message: err.Error(),
		})

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error: "validation_error", Message: err.Error(),
		})

	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "internal_error", Message: "an unexpected error occurred",
		})
	}
}

// respondValidation reports a malformed or rejected request payload.
func respondValidation(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, errorResponse{
		Error: "validation_error", Message: err.Error(),
	})
}
