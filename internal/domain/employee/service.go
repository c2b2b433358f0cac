package employee

import "context"

// EmployeeService defines business logic for personnel management. Listing
// honors the caller's location scope (USER-role sessions only see their own
// location); mutations emit PERSONEL audit entries.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	// Delete removes the personnel record only. Historical attendance cells
	// keyed by the employee ID are intentionally left in place.
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)
}
