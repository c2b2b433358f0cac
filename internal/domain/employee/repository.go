package employee

import "context"

// EmployeeRepository defines data access for personnel records.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetBySicilNo(ctx context.Context, sicilNo string) (Employee, error)
	// List returns employees matching the filter, in insertion order so
	// exports stay stable between runs.
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
}
