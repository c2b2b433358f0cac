package response

import (
	"errors"
	"net/http"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/attendance"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/auth"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/employee"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/location"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/user"
	"github.com/bilgin-hr/puantaj-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is deactivated")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrPeriodLocked):
		Conflict(w, "Period is locked for editing")
	case errors.Is(err, attendance.ErrInvalidCode):
		BadRequest(w, "Unrecognized status code", nil)
	case errors.Is(err, attendance.ErrInvalidDay):
		BadRequest(w, "Day is outside the selected month", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrSicilNoExists):
		Conflict(w, "Sicil no already registered")

	// Location domain errors
	case errors.Is(err, location.ErrLocationNotFound):
		NotFound(w, "Location not found")
	case errors.Is(err, location.ErrLocationCodeExists):
		Conflict(w, "Location code already exists")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
