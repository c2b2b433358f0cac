package employee

import (
	"context"
	"fmt"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/audit"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/employee"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/location"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	location.LocationRepository
	auditService audit.AuditService
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	locationRepo location.LocationRepository,
	auditService audit.AuditService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		LocationRepository: locationRepo,
		auditService:       auditService,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	loc, err := s.LocationRepository.GetByID(ctx, req.LocationID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		SicilNo:    req.SicilNo,
		FullName:   req.FullName,
		LocationID: req.LocationID,
		Duty:       req.Duty,
		HireDate:   req.HireDate,
		ExitDate:   req.ExitDate,
		Active:     true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.auditService.Record(ctx, audit.ActionPersonel, fmt.Sprintf("%s personeli sisteme eklendi.", emp.FullName))

	resp := employee.ToResponse(emp)
	resp.LocationName = loc.Name
	return resp, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	loc, err := s.LocationRepository.GetByID(ctx, req.LocationID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	current.SicilNo = req.SicilNo
	current.FullName = req.FullName
	current.LocationID = req.LocationID
	current.Duty = req.Duty
	current.HireDate = req.HireDate
	current.ExitDate = req.ExitDate
	if req.Active != nil {
		current.Active = *req.Active
	}

	if err := s.EmployeeRepository.Update(ctx, current); err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.auditService.Record(ctx, audit.ActionPersonel, fmt.Sprintf("%s personeli güncellendi.", current.FullName))

	resp := employee.ToResponse(current)
	resp.LocationName = loc.Name
	return resp, nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		return err
	}

	s.auditService.Record(ctx, audit.ActionPersonel, fmt.Sprintf("%s personel kaydı silindi.", emp.FullName))
	return nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	resp := employee.ToResponse(emp)
	if loc, err := s.LocationRepository.GetByID(ctx, emp.LocationID); err == nil {
		resp.LocationName = loc.Name
	}
	return resp, nil
}

// List implements employee.EmployeeService. USER-role callers are pinned to
// their own location regardless of the requested filter.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	if _, claims, err := jwtauth.FromContext(ctx); err == nil {
		if role, ok := claims["role"].(string); ok && user.Role(role) != user.RoleAdmin {
			if locationID, ok := claims["location_id"].(string); ok && locationID != "" {
				filter.LocationID = locationID
			}
		}
	}

	emps, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	locations, err := s.LocationRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	locationNames := make(map[string]string, len(locations))
	for _, loc := range locations {
		locationNames[loc.ID] = loc.Name
	}

	out := make([]employee.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		resp := employee.ToResponse(emp)
		resp.LocationName = locationNames[emp.LocationID]
		out = append(out, resp)
	}
	return out, nil
}
