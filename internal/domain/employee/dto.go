package employee

import (
	"github.com/bilgin-hr/puantaj-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	SicilNo    string `json:"sicil_no"`
	FullName   string `json:"full_name"`
	LocationID string `json:"location_id"`
	Duty       string `json:"duty"`
	HireDate   string `json:"hire_date"`
	ExitDate   string `json:"exit_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SicilNo) {
		errs = append(errs, validator.ValidationError{Field: "sicil_no", Message: "sicil_no is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	if validator.IsEmpty(r.LocationID) {
		errs = append(errs, validator.ValidationError{Field: "location_id", Message: "location_id is required"})
	}
	if !validator.IsEmpty(r.HireDate) {
		if _, ok := validator.IsValidTRDate(r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be in 31.12.2023 format"})
		}
	}
	if !validator.IsEmpty(r.ExitDate) {
		if _, ok := validator.IsValidTRDate(r.ExitDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "exit_date", Message: "exit_date must be in 31.12.2023 format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID string `json:"-"`
	CreateEmployeeRequest
	Active *bool `json:"active,omitempty"`
}

// EmployeeFilter narrows employee listings. USER-role callers are always
// pinned to their own location by the service regardless of the filter.
type EmployeeFilter struct {
	LocationID string `json:"location_id,omitempty"`
	Search     string `json:"search,omitempty"` // matches name or sicil no
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	SicilNo      string `json:"sicil_no"`
	FullName     string `json:"full_name"`
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name,omitempty"`
	Duty         string `json:"duty"`
	HireDate     string `json:"hire_date"`
	ExitDate     string `json:"exit_date,omitempty"`
	Active       bool   `json:"active"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		SicilNo:    e.SicilNo,
		FullName:   e.FullName,
		LocationID: e.LocationID,
		Duty:       e.Duty,
		HireDate:   e.HireDate,
		ExitDate:   e.ExitDate,
		Active:     e.Active,
	}
}
