package location

import (
	"github.com/bilgin-hr/puantaj-backend-go/internal/pkg/validator"
)

type CreateLocationRequest struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	DefaultHours float64 `json:"default_hours"`
}

func (r *CreateLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.DefaultHours < 0 || r.DefaultHours > 24 {
		errs = append(errs, validator.ValidationError{Field: "default_hours", Message: "default_hours must be between 0 and 24"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLocationRequest struct {
	ID string `json:"-"`
	CreateLocationRequest
}

type LocationResponse struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	DefaultHours float64 `json:"default_hours"`
	Employees    int     `json:"employees,omitempty"`
}

func ToResponse(l Location) LocationResponse {
	return LocationResponse{
		ID:           l.ID,
		Code:         l.Code,
		Name:         l.Name,
		DefaultHours: l.DefaultHours,
	}
}
