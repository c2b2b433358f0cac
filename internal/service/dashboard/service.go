package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/attendance"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/dashboard"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/employee"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/location"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/user"
	"github.com/bilgin-hr/puantaj-backend-go/internal/pkg/period"
	"github.com/go-chi/jwtauth/v5"
)

type DashboardServiceImpl struct {
	attendance.LedgerRepository
	employee.EmployeeRepository
	location.LocationRepository
}

func NewDashboardService(
	ledgerRepo attendance.LedgerRepository,
	employeeRepo employee.EmployeeRepository,
	locationRepo location.LocationRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		LedgerRepository:   ledgerRepo,
		EmployeeRepository: employeeRepo,
		LocationRepository: locationRepo,
	}
}

// Overview implements dashboard.DashboardService. Figures cover the current
// calendar month only.
func (s *DashboardServiceImpl) Overview(ctx context.Context) (dashboard.Overview, error) {
	now := time.Now()
	year, month0 := now.Year(), int(now.Month())-1
	key := period.Key(year, month0)
	totalDays := period.DaysInMonth(year, month0)

	scope := ""
	if _, claims, err := jwtauth.FromContext(ctx); err == nil {
		if role, ok := claims["role"].(string); ok && user.Role(role) != user.RoleAdmin {
			if locationID, ok := claims["location_id"].(string); ok {
				scope = locationID
			}
		}
	}

	locations, err := s.LocationRepository.List(ctx)
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("failed to list locations: %w", err)
	}
	emps, err := s.EmployeeRepository.List(ctx, employee.EmployeeFilter{LocationID: scope})
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("failed to list employees: %w", err)
	}

	byLocation := make(map[string]*dashboard.LocationStat, len(locations))
	defaultHours := make(map[string]float64, len(locations))
	visibleLocations := 0
	for _, loc := range locations {
		if scope != "" && loc.ID != scope {
			continue
		}
		visibleLocations++
		defaultHours[loc.ID] = loc.DefaultHours
		byLocation[loc.ID] = &dashboard.LocationStat{
			LocationID:   loc.ID,
			LocationName: loc.Name,
		}
	}

	overview := dashboard.Overview{
		Period:    key,
		Employees: len(emps),
		Locations: visibleLocations,
	}

	for _, emp := range emps {
		stat, ok := byLocation[emp.LocationID]
		if !ok {
			continue
		}
		stat.Employees++

		cells := s.LedgerRepository.EmployeeCells(ctx, key, emp.ID)
		for d := 1; d <= totalDays; d++ {
			cell := cells[d]
			if attendance.IsWorkCode(cell.Code) {
				stat.PlannedHours += defaultHours[emp.LocationID]
			}
			stat.OvertimeFM += cell.FM
		}
	}

	for _, loc := range locations {
		stat, ok := byLocation[loc.ID]
		if !ok {
			continue
		}
		overview.TotalNormalHours += stat.PlannedHours
		overview.TotalFMHours += stat.OvertimeFM
		overview.ByLocation = append(overview.ByLocation, *stat)
	}
	return overview, nil
}
