package attendance

import (
	"fmt"
	"time"

	"github.com/bilgin-hr/puantaj-backend-go/internal/pkg/period"
	"github.com/bilgin-hr/puantaj-backend-go/internal/pkg/validator"
)

// PeriodRequest selects one attendance period. Month is 0-based (January = 0)
// to match the grid UI; the canonical key renders it 1-based.
type PeriodRequest struct {
	Year   int `json:"year"`
	Month0 int `json:"month"`
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month0 < 0 || r.Month0 > 11 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 0 and 11",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Key returns the canonical period key for the request.
func (r *PeriodRequest) Key() string {
	return period.Key(r.Year, r.Month0)
}

// SaveCellRequest writes one employee-day cell.
type SaveCellRequest struct {
	PeriodRequest
	EmployeeID string `json:"employee_id"`
	Day        int    `json:"day"`
	Cell       Cell   `json:"cell"`
}

func (r *SaveCellRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := r.PeriodRequest.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.Day < 1 || (r.Month0 >= 0 && r.Month0 <= 11 && r.Day > period.DaysInMonth(r.Year, r.Month0)) {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day is outside the selected month",
		})
	}
	if !IsValidCode(r.Cell.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: fmt.Sprintf("unrecognized status code %q", r.Cell.Code),
		})
	}
	if r.Cell.FM < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "fm",
			Message: "overtime hours must not be negative",
		})
	}
	if r.Cell.UBGT < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ubgt",
			Message: "UBGT hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AutoFillRequest bulk-initializes a period for the employees visible under
// the optional location filter. Existing cells of the targeted employees are
// overwritten; the handler layer is expected to have confirmed this with the
// operator.
type AutoFillRequest struct {
	PeriodRequest
	LocationID string `json:"location_id,omitempty"`
}

// GridRequest reads a period's grid, optionally filtered to one location.
type GridRequest struct {
	PeriodRequest
	LocationID string `json:"location_id,omitempty"`
}

// GridEmployee is one grid row: the employee, their raw cells keyed by day of
// month, and the derived summary.
type GridEmployee struct {
	EmployeeID   string       `json:"employee_id"`
	SicilNo      string       `json:"sicil_no"`
	FullName     string       `json:"full_name"`
	Duty         string       `json:"duty"`
	LocationID   string       `json:"location_id"`
	LocationName string       `json:"location_name"`
	HireDate     string       `json:"hire_date"`
	ExitDate     string       `json:"exit_date,omitempty"`
	Cells        map[int]Cell `json:"cells"`
	Summary      Summary      `json:"summary"`
}

// GridResponse is the full state of one period as the grid page renders it.
type GridResponse struct {
	Period    string         `json:"period"`
	Year      int            `json:"year"`
	Month0    int            `json:"month"`
	TotalDays int            `json:"total_days"`
	Locked    bool           `json:"locked"`
	Employees []GridEmployee `json:"employees"`
}

// LockStatus is the lock state of one month in the lock overview.
type LockStatus struct {
	Period string `json:"period"`
	Month0 int    `json:"month"`
	Label  string `json:"label"`
	Locked bool   `json:"locked"`
}

// ToggleLockResponse reports the state a period ended up in after a toggle.
type ToggleLockResponse struct {
	Period string `json:"period"`
	Locked bool   `json:"locked"`
}

// AutoFillResponse reports how many employees were filled.
type AutoFillResponse struct {
	Period    string `json:"period"`
	Employees int    `json:"employees"`
}
