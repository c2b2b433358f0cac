package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

// EmployeeRepository keeps personnel records in insertion order so grid and
// export output stays stable between requests.
type EmployeeRepository struct {
	mu    sync.RWMutex
	byID  map[string]*employee.Employee
	order []string
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{byID: make(map[string]*employee.Employee)}
}

// Create implements employee.EmployeeRepository.
func (r *EmployeeRepository) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.SicilNo == emp.SicilNo {
			return employee.Employee{}, employee.ErrSicilNoExists
		}
	}

	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	stored := emp
	r.byID[emp.ID] = &stored
	r.order = append(r.order, emp.ID)
	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *EmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emp, ok := r.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return *emp, nil
}

// GetBySicilNo implements employee.EmployeeRepository.
func (r *EmployeeRepository) GetBySicilNo(_ context.Context, sicilNo string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, emp := range r.byID {
		if emp.SicilNo == sicilNo {
			return *emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// List implements employee.EmployeeRepository.
func (r *EmployeeRepository) List(_ context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]employee.Employee, 0, len(r.order))
	for _, id := range r.order {
		emp, ok := r.byID[id]
		if !ok {
			continue
		}
		if filter.LocationID != "" && emp.LocationID != filter.LocationID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(emp.FullName), search) &&
			!strings.Contains(emp.SicilNo, search) {
			continue
		}
		out = append(out, *emp)
	}
	return out, nil
}

// Update implements employee.EmployeeRepository.
func (r *EmployeeRepository) Update(_ context.Context, emp employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[emp.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	for id, other := range r.byID {
		if id != emp.ID && other.SicilNo == emp.SicilNo {
			return employee.ErrSicilNoExists
		}
	}

	emp.CreatedAt = stored.CreatedAt
	emp.UpdatedAt = time.Now()
	*stored = emp
	return nil
}

// Delete implements employee.EmployeeRepository. Attendance cells referencing
// the employee stay in the ledger.
func (r *EmployeeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.byID, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
