package attendance

import (
	"context"
	"fmt"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/attendance"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/audit"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/employee"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/location"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/user"
	"github.com/bilgin-hr/puantaj-backend-go/internal/pkg/period"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	attendance.LedgerRepository
	employee.EmployeeRepository
	location.LocationRepository
	auditService audit.AuditService
}

func NewAttendanceService(
	ledgerRepo attendance.LedgerRepository,
	employeeRepo employee.EmployeeRepository,
	locationRepo location.LocationRepository,
	auditService audit.AuditService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		LedgerRepository:   ledgerRepo,
		EmployeeRepository: employeeRepo,
		LocationRepository: locationRepo,
		auditService:       auditService,
	}
}

// scopedLocation returns the location filter the caller is allowed to use.
// USER-role sessions are pinned to their own location regardless of the
// requested filter; admins get the filter as-is.
func (a *AttendanceServiceImpl) scopedLocation(ctx context.Context, requested string) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return requested
	}
	if role, ok := claims["role"].(string); ok && user.Role(role) != user.RoleAdmin {
		if locationID, ok := claims["location_id"].(string); ok && locationID != "" {
			return locationID
		}
	}
	return requested
}

// visibleEmployees lists the employees the caller may operate on, in stable
// roster order.
func (a *AttendanceServiceImpl) visibleEmployees(ctx context.Context, requestedLocation string) ([]employee.Employee, error) {
	filter := employee.EmployeeFilter{LocationID: a.scopedLocation(ctx, requestedLocation)}
	emps, err := a.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return emps, nil
}

// GetGrid implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetGrid(ctx context.Context, req attendance.GridRequest) (attendance.GridResponse, error) {
	if err := req.PeriodRequest.Validate(); err != nil {
		return attendance.GridResponse{}, err
	}

	emps, err := a.visibleEmployees(ctx, req.LocationID)
	if err != nil {
		return attendance.GridResponse{}, err
	}

	locations, err := a.LocationRepository.List(ctx)
	if err != nil {
		return attendance.GridResponse{}, fmt.Errorf("failed to list locations: %w", err)
	}
	locationNames := make(map[string]string, len(locations))
	for _, loc := range locations {
		locationNames[loc.ID] = loc.Name
	}

	key := req.Key()
	resp := attendance.GridResponse{
		Period:    key,
		Year:      req.Year,
		Month0:    req.Month0,
		TotalDays: period.DaysInMonth(req.Year, req.Month0),
		Locked:    a.LedgerRepository.IsLocked(ctx, key),
		Employees: make([]attendance.GridEmployee, 0, len(emps)),
	}

	for _, emp := range emps {
		cells := a.LedgerRepository.EmployeeCells(ctx, key, emp.ID)
		resp.Employees = append(resp.Employees, attendance.GridEmployee{
			EmployeeID:   emp.ID,
			SicilNo:      emp.SicilNo,
			FullName:     emp.FullName,
			Duty:         emp.Duty,
			LocationID:   emp.LocationID,
			LocationName: locationNames[emp.LocationID],
			HireDate:     emp.HireDate,
			ExitDate:     emp.ExitDate,
			Cells:        cells,
			Summary:      attendance.Summarize(cells, req.Year, req.Month0),
		})
	}
	return resp, nil
}

// SaveCell implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SaveCell(ctx context.Context, req attendance.SaveCellRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return err
	}

	return a.LedgerRepository.SetCell(ctx, req.Key(), emp.ID, req.Day, req.Cell)
}

// AutoFill implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) AutoFill(ctx context.Context, req attendance.AutoFillRequest) (attendance.AutoFillResponse, error) {
	if err := req.PeriodRequest.Validate(); err != nil {
		return attendance.AutoFillResponse{}, err
	}

	emps, err := a.visibleEmployees(ctx, req.LocationID)
	if err != nil {
		return attendance.AutoFillResponse{}, err
	}

	ids := make([]string, len(emps))
	for i, emp := range emps {
		ids[i] = emp.ID
	}

	if err := a.LedgerRepository.AutoFill(ctx, req.Key(), ids, req.Year, req.Month0); err != nil {
		return attendance.AutoFillResponse{}, err
	}

	a.auditService.Record(ctx, audit.ActionPuantaj,
		fmt.Sprintf("%d personel için otomatik dolum yapıldı.", len(ids)))
	return attendance.AutoFillResponse{Period: req.Key(), Employees: len(ids)}, nil
}

// ClearPeriod implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClearPeriod(ctx context.Context, req attendance.PeriodRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := a.LedgerRepository.ClearPeriod(ctx, req.Key()); err != nil {
		return err
	}

	a.auditService.Record(ctx, audit.ActionPuantaj, fmt.Sprintf("%s dönemi temizlendi.", req.Key()))
	return nil
}

// Summarize implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Summarize(ctx context.Context, req attendance.PeriodRequest, employeeID string) (attendance.Summary, error) {
	if err := req.Validate(); err != nil {
		return attendance.Summary{}, err
	}
	if _, err := a.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.Summary{}, err
	}

	cells := a.LedgerRepository.EmployeeCells(ctx, req.Key(), employeeID)
	return attendance.Summarize(cells, req.Year, req.Month0), nil
}

// ToggleLock implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ToggleLock(ctx context.Context, req attendance.PeriodRequest) (attendance.ToggleLockResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ToggleLockResponse{}, err
	}

	locked := a.LedgerRepository.ToggleLock(ctx, req.Key())
	label := period.Label(req.Year, req.Month0)
	if locked {
		a.auditService.Record(ctx, audit.ActionLock, fmt.Sprintf("%s dönemi kilitlendi.", label))
	} else {
		a.auditService.Record(ctx, audit.ActionUnlock, fmt.Sprintf("%s dönemi kilidi açıldı.", label))
	}
	return attendance.ToggleLockResponse{Period: req.Key(), Locked: locked}, nil
}

// LockStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) LockStatus(ctx context.Context, year int) ([]attendance.LockStatus, error) {
	out := make([]attendance.LockStatus, 0, 12)
	for month0 := 0; month0 < 12; month0++ {
		key := period.Key(year, month0)
		out = append(out, attendance.LockStatus{
			Period: key,
			Month0: month0,
			Label:  period.Label(year, month0),
			Locked: a.LedgerRepository.IsLocked(ctx, key),
		})
	}
	return out, nil
}
