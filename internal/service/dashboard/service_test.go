package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/attendance"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/dashboard"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/employee"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/location"
	"github.com/bilgin-hr/puantaj-backend-go/internal/pkg/period"
	"github.com/bilgin-hr/puantaj-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardFixture struct {
	service    dashboard.DashboardService
	ledgerRepo *memory.LedgerRepository
	locations  []location.Location
	employees  []employee.Employee
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()
	ctx := context.Background()

	ledgerRepo := memory.NewLedgerRepository()
	employeeRepo := memory.NewEmployeeRepository()
	locationRepo := memory.NewLocationRepository()

	f := &dashboardFixture{
		service:    NewDashboardService(ledgerRepo, employeeRepo, locationRepo),
		ledgerRepo: ledgerRepo,
	}

	for _, name := range []string{"İstanbul Merkez", "Ankara Şube"} {
		loc, err := locationRepo.Create(ctx, location.Location{
			Code:         "LOK00" + string(rune('1'+len(f.locations))),
			Name:         name,
			DefaultHours: 8,
		})
		require.NoError(t, err)
		f.locations = append(f.locations, loc)
	}

	for i, loc := range f.locations {
		emp, err := employeeRepo.Create(ctx, employee.Employee{
			SicilNo:    "0500" + string(rune('1'+i)),
			FullName:   "Personel " + string(rune('A'+i)),
			LocationID: loc.ID,
			Duty:       "UZMAN",
			HireDate:   "01.01.2023",
			Active:     true,
		})
		require.NoError(t, err)
		f.employees = append(f.employees, emp)
	}
	return f
}

// currentPeriod returns the key the dashboard aggregates over.
func currentPeriod() (string, int, int) {
	now := time.Now()
	year, month0 := now.Year(), int(now.Month())-1
	return period.Key(year, month0), year, month0
}

func TestOverviewEmptyLedger(t *testing.T) {
	// Arrange
	f := newDashboardFixture(t)
	key, _, _ := currentPeriod()

	// Act
	overview, err := f.service.Overview(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, key, overview.Period)
	assert.Equal(t, 2, overview.Employees)
	assert.Equal(t, 2, overview.Locations)
	assert.Zero(t, overview.TotalNormalHours)
	assert.Zero(t, overview.TotalFMHours)
	require.Len(t, overview.ByLocation, 2)
	assert.Equal(t, "İstanbul Merkez", overview.ByLocation[0].LocationName)
	assert.Equal(t, 1, overview.ByLocation[0].Employees)
}

func TestOverviewAggregatesCurrentMonth(t *testing.T) {
	// Arrange: first employee gets 2 worked days with overtime, second
	// employee 1 on-duty day at the other location.
	f := newDashboardFixture(t)
	ctx := context.Background()
	key, _, _ := currentPeriod()

	require.NoError(t, f.ledgerRepo.SetCell(ctx, key, f.employees[0].ID, 1,
		attendance.Cell{Code: attendance.CodeWorked, FM: 2.5, Meal: true}))
	require.NoError(t, f.ledgerRepo.SetCell(ctx, key, f.employees[0].ID, 2,
		attendance.Cell{Code: attendance.CodeWorked, Meal: true}))
	require.NoError(t, f.ledgerRepo.SetCell(ctx, key, f.employees[0].ID, 3,
		attendance.Cell{Code: attendance.CodeWeeklyRest}))
	require.NoError(t, f.ledgerRepo.SetCell(ctx, key, f.employees[1].ID, 1,
		attendance.Cell{Code: attendance.CodeOnDuty, FM: 1}))

	// Act
	overview, err := f.service.Overview(ctx)

	// Assert: rest days add no planned hours; X and G both count as work.
	require.NoError(t, err)
	assert.InDelta(t, 24.0, overview.TotalNormalHours, 0.001)
	assert.InDelta(t, 3.5, overview.TotalFMHours, 0.001)

	require.Len(t, overview.ByLocation, 2)
	assert.InDelta(t, 16.0, overview.ByLocation[0].PlannedHours, 0.001)
	assert.InDelta(t, 2.5, overview.ByLocation[0].OvertimeFM, 0.001)
	assert.InDelta(t, 8.0, overview.ByLocation[1].PlannedHours, 0.001)
	assert.InDelta(t, 1.0, overview.ByLocation[1].OvertimeFM, 0.001)
}

func TestOverviewIgnoresOtherPeriods(t *testing.T) {
	// Arrange: cells in a past period must not leak into today's figures.
	f := newDashboardFixture(t)
	ctx := context.Background()

	require.NoError(t, f.ledgerRepo.SetCell(ctx, "2020-01", f.employees[0].ID, 1,
		attendance.Cell{Code: attendance.CodeWorked, FM: 4}))

	// Act
	overview, err := f.service.Overview(ctx)

	// Assert
	require.NoError(t, err)
	assert.Zero(t, overview.TotalNormalHours)
	assert.Zero(t, overview.TotalFMHours)
}
