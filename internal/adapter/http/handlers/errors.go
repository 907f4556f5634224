package handlers

import (
	"errors"
	"net/http"

	"auto_service_queue/internal/usecase"
	"auto_service_queue/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

// mapShopError translates use-case sentinels into the HTTP error contract.
func mapShopError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServices):
		return pkg.NewDomainErrorSimple("INVALID_SERVICES", "Services array is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidJobStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status. Must be one of: pending, started, completed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidWaitTime):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCustomerInput):
		return pkg.NewDomainError("INVALID_CUSTOMER", "Name, vehicle and a valid 10-digit phone number are required", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownServices):
		return pkg.NewDomainErrorSimple("UNKNOWN_SERVICES", "No valid services selected", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWaitTimeEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "No wait time estimate found for this customer", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobConflict):
		return pkg.NewDomainErrorSimple("JOB_CONFLICT", "Job was modified concurrently, retry the request", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapShopError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
