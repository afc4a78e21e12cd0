package response

import (
	"errors"
	"net/http"

	"github.com/luocityspa/staff-portal/internal/domain/employee"
	"github.com/luocityspa/staff-portal/internal/domain/identity"
	"github.com/luocityspa/staff-portal/internal/domain/request"
	"github.com/luocityspa/staff-portal/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Identity domain errors
	case errors.Is(err, identity.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, identity.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, identity.ErrEmailTaken):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrInvalidRole):
		BadRequest(w, err.Error(), nil)

	// Request domain errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, request.ErrRequestAlreadyDecided):
		Conflict(w, "Request has already been decided")
	case errors.Is(err, request.ErrInvalidDecision):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
