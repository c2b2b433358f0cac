package location

import (
	"context"
	"fmt"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/audit"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/employee"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/location"
)

type LocationServiceImpl struct {
	location.LocationRepository
	employee.EmployeeRepository
	auditService audit.AuditService
}

func NewLocationService(
	locationRepo location.LocationRepository,
	employeeRepo employee.EmployeeRepository,
	auditService audit.AuditService,
) location.LocationService {
	return &LocationServiceImpl{
		LocationRepository: locationRepo,
		EmployeeRepository: employeeRepo,
		auditService:       auditService,
	}
}

// Create implements location.LocationService.
func (s *LocationServiceImpl) Create(ctx context.Context, req location.CreateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	loc, err := s.LocationRepository.Create(ctx, location.Location{
		Code:         req.Code,
		Name:         req.Name,
		DefaultHours: req.DefaultHours,
	})
	if err != nil {
		return location.LocationResponse{}, err
	}

	s.auditService.Record(ctx, audit.ActionLokasyon, fmt.Sprintf("Yeni lokasyon eklendi: %s", loc.Name))
	return location.ToResponse(loc), nil
}

// Update implements location.LocationService.
func (s *LocationServiceImpl) Update(ctx context.Context, req location.UpdateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	current, err := s.LocationRepository.GetByID(ctx, req.ID)
	if err != nil {
		return location.LocationResponse{}, err
	}

	current.Code = req.Code
	current.Name = req.Name
	current.DefaultHours = req.DefaultHours
	if err := s.LocationRepository.Update(ctx, current); err != nil {
		return location.LocationResponse{}, err
	}

	s.auditService.Record(ctx, audit.ActionLokasyon, fmt.Sprintf("Lokasyon güncellendi: %s", current.Name))
	return location.ToResponse(current), nil
}

// Delete implements location.LocationService. Employees assigned to the
// location keep their location ID; reassignment is up to the operator.
func (s *LocationServiceImpl) Delete(ctx context.Context, id string) error {
	loc, err := s.LocationRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.LocationRepository.Delete(ctx, id); err != nil {
		return err
	}

	s.auditService.Record(ctx, audit.ActionLokasyon, fmt.Sprintf("%s lokasyonu silindi.", loc.Name))
	return nil
}

// Get implements location.LocationService.
func (s *LocationServiceImpl) Get(ctx context.Context, id string) (location.LocationResponse, error) {
	loc, err := s.LocationRepository.GetByID(ctx, id)
	if err != nil {
		return location.LocationResponse{}, err
	}
	return location.ToResponse(loc), nil
}

// List implements location.LocationService. Each entry carries its current
// headcount for the admin overview.
func (s *LocationServiceImpl) List(ctx context.Context) ([]location.LocationResponse, error) {
	locations, err := s.LocationRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	counts := make(map[string]int, len(locations))
	emps, err := s.EmployeeRepository.List(ctx, employee.EmployeeFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	for _, emp := range emps {
		counts[emp.LocationID]++
	}

	out := make([]location.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		resp := location.ToResponse(loc)
		resp.Employees = counts[loc.ID]
		out = append(out, resp)
	}
	return out, nil
}
