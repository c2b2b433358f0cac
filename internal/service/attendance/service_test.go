package attendance

import (
	"context"
	"fmt"
	"testing"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/attendance"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/audit"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/employee"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/location"
	"github.com/bilgin-hr/puantaj-backend-go/internal/repository/memory"
	auditservice "github.com/bilgin-hr/puantaj-backend-go/internal/service/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	service   attendance.AttendanceService
	ledger    *memory.LedgerRepository
	auditRepo *memory.AuditRepository
	employees []employee.Employee
	location  location.Location
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ledgerRepo := memory.NewLedgerRepository()
	employeeRepo := memory.NewEmployeeRepository()
	locationRepo := memory.NewLocationRepository()
	auditRepo := memory.NewAuditRepository()
	auditSvc := auditservice.NewAuditService(auditRepo)

	ctx := context.Background()
	loc, err := locationRepo.Create(ctx, location.Location{Code: "LOK001", Name: "İstanbul Merkez", DefaultHours: 8})
	require.NoError(t, err)

	names := []string{"Ahmet Yılmaz", "Ayşe Demir", "Mehmet Kaya"}
	emps := make([]employee.Employee, 0, len(names))
	for i, name := range names {
		emp, err := employeeRepo.Create(ctx, employee.Employee{
			SicilNo:    fmt.Sprintf("%05d", 5001+i),
			FullName:   name,
			LocationID: loc.ID,
			Duty:       "UZMAN",
			HireDate:   "01.01.2023",
			Active:     true,
		})
		require.NoError(t, err)
		emps = append(emps, emp)
	}

	return &fixture{
		service:   NewAttendanceService(ledgerRepo, employeeRepo, locationRepo, auditSvc),
		ledger:    ledgerRepo,
		auditRepo: auditRepo,
		employees: emps,
		location:  loc,
	}
}

func june2025() attendance.PeriodRequest {
	return attendance.PeriodRequest{Year: 2025, Month0: 5}
}

func TestSaveCellAndGetGrid(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := context.Background()
	cell := attendance.Cell{Code: attendance.CodeWorked, FM: 2.5, Meal: true}

	// Act
	err := f.service.SaveCell(ctx, attendance.SaveCellRequest{
		PeriodRequest: june2025(),
		EmployeeID:    f.employees[0].ID,
		Day:           2,
		Cell:          cell,
	})

	// Assert
	require.NoError(t, err)

	grid, err := f.service.GetGrid(ctx, attendance.GridRequest{PeriodRequest: june2025()})
	require.NoError(t, err)
	assert.Equal(t, "2025-06", grid.Period)
	assert.Equal(t, 30, grid.TotalDays)
	assert.False(t, grid.Locked)
	require.Len(t, grid.Employees, 3)
	assert.Equal(t, cell, grid.Employees[0].Cells[2])
	assert.Equal(t, "İstanbul Merkez", grid.Employees[0].LocationName)
	assert.Equal(t, 2.5, grid.Employees[0].Summary.TotalFM)
}

func TestSaveCellValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  attendance.SaveCellRequest
	}{
		{
			name: "day outside month",
			req: attendance.SaveCellRequest{
				PeriodRequest: june2025(),
				EmployeeID:    f.employees[0].ID,
				Day:           31,
				Cell:          attendance.Cell{Code: attendance.CodeWorked},
			},
		},
		{
			name: "unknown code",
			req: attendance.SaveCellRequest{
				PeriodRequest: june2025(),
				EmployeeID:    f.employees[0].ID,
				Day:           5,
				Cell:          attendance.Cell{Code: "Z"},
			},
		},
		{
			name: "negative overtime",
			req: attendance.SaveCellRequest{
				PeriodRequest: june2025(),
				EmployeeID:    f.employees[0].ID,
				Day:           5,
				Cell:          attendance.Cell{Code: attendance.CodeWorked, FM: -1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.service.SaveCell(ctx, tt.req)
			assert.Error(t, err)
		})
	}
}

func TestSaveCellUnknownEmployee(t *testing.T) {
	f := newFixture(t)

	err := f.service.SaveCell(context.Background(), attendance.SaveCellRequest{
		PeriodRequest: june2025(),
		EmployeeID:    "missing",
		Day:           2,
		Cell:          attendance.Cell{Code: attendance.CodeWorked},
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSaveCellLockedPeriod(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.service.ToggleLock(ctx, june2025())
	require.NoError(t, err)

	// Act
	err = f.service.SaveCell(ctx, attendance.SaveCellRequest{
		PeriodRequest: june2025(),
		EmployeeID:    f.employees[0].ID,
		Day:           2,
		Cell:          attendance.Cell{Code: attendance.CodeWorked},
	})

	// Assert
	require.ErrorIs(t, err, attendance.ErrPeriodLocked)
	assert.True(t, f.ledger.GetCell(ctx, "2025-06", f.employees[0].ID, 2).IsZero())
}

func TestAutoFillJune2025(t *testing.T) {
	// Arrange: June 1st 2025 is a Sunday.
	f := newFixture(t)
	ctx := context.Background()

	// Act
	resp, err := f.service.AutoFill(ctx, attendance.AutoFillRequest{PeriodRequest: june2025()})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Employees)

	grid, err := f.service.GetGrid(ctx, attendance.GridRequest{PeriodRequest: june2025()})
	require.NoError(t, err)

	total := 0
	for _, row := range grid.Employees {
		total += len(row.Cells)
		assert.Equal(t, attendance.CodeWeeklyRest, row.Cells[1].Code)
		assert.False(t, row.Cells[1].Meal)
		assert.Equal(t, attendance.CodeWorked, row.Cells[2].Code)
		assert.True(t, row.Cells[2].Meal)
		assert.Equal(t, attendance.CodeWeeklyRest, row.Cells[7].Code)
	}
	assert.Equal(t, 90, total)

	entries := f.auditRepo.List(ctx, audit.ActionPuantaj, 10)
	require.Len(t, entries, 1)
	assert.Equal(t, "3 personel için otomatik dolum yapıldı.", entries[0].Detail)
	assert.Equal(t, "Sistem", entries[0].Actor)
}

func TestClearPeriod(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.service.AutoFill(ctx, attendance.AutoFillRequest{PeriodRequest: june2025()})
	require.NoError(t, err)

	// Act
	err = f.service.ClearPeriod(ctx, june2025())

	// Assert
	require.NoError(t, err)
	grid, err := f.service.GetGrid(ctx, attendance.GridRequest{PeriodRequest: june2025()})
	require.NoError(t, err)
	for _, row := range grid.Employees {
		assert.Empty(t, row.Cells)
	}

	entries := f.auditRepo.List(ctx, audit.ActionPuantaj, 10)
	require.Len(t, entries, 2)
	assert.Equal(t, "2025-06 dönemi temizlendi.", entries[0].Detail)
}

func TestSummarize(t *testing.T) {
	// Arrange: 20 worked, 8 weekly rest, 2 unpaid leave, 12.5 overtime hours.
	f := newFixture(t)
	ctx := context.Background()
	emp := f.employees[0]

	day := 1
	write := func(code string, count int, fm float64) {
		for i := 0; i < count; i++ {
			err := f.service.SaveCell(ctx, attendance.SaveCellRequest{
				PeriodRequest: june2025(),
				EmployeeID:    emp.ID,
				Day:           day,
				Cell:          attendance.Cell{Code: code, FM: fm},
			})
			require.NoError(t, err)
			day++
			fm = 0
		}
	}
	write(attendance.CodeWorked, 20, 12.5)
	write(attendance.CodeWeeklyRest, 8, 0)
	write(attendance.CodeUnpaidLeave, 2, 0)

	// Act
	summary, err := f.service.Summarize(ctx, june2025(), emp.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 20, summary.CodeCounts[attendance.CodeWorked])
	assert.Equal(t, 8, summary.CodeCounts[attendance.CodeWeeklyRest])
	assert.Equal(t, 2, summary.CodeCounts[attendance.CodeUnpaidLeave])
	assert.Equal(t, 28, summary.TotalPaidDays)
	assert.Equal(t, 12.5, summary.TotalFM)
}

func TestSummarizeEmptyPeriod(t *testing.T) {
	f := newFixture(t)

	summary, err := f.service.Summarize(context.Background(), june2025(), f.employees[0].ID)

	require.NoError(t, err)
	assert.Zero(t, summary.TotalPaidDays)
	assert.Zero(t, summary.TotalMealDays)
	assert.Zero(t, summary.TotalFM)
	assert.Zero(t, summary.TotalUBGT)
	for code, count := range summary.CodeCounts {
		assert.Zero(t, count, "code %s", code)
	}
}

func TestToggleLock(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := context.Background()

	// Act: lock, then unlock.
	first, err := f.service.ToggleLock(ctx, june2025())
	require.NoError(t, err)
	second, err := f.service.ToggleLock(ctx, june2025())
	require.NoError(t, err)

	// Assert
	assert.True(t, first.Locked)
	assert.False(t, second.Locked)

	locks := f.auditRepo.List(ctx, audit.ActionLock, 10)
	require.Len(t, locks, 1)
	assert.Equal(t, "Haziran 2025 dönemi kilitlendi.", locks[0].Detail)
	unlocks := f.auditRepo.List(ctx, audit.ActionUnlock, 10)
	require.Len(t, unlocks, 1)
	assert.Equal(t, "Haziran 2025 dönemi kilidi açıldı.", unlocks[0].Detail)
}

func TestLockStatusListsAllMonths(t *testing.T) {
	// Arrange
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.service.ToggleLock(ctx, attendance.PeriodRequest{Year: 2025, Month0: 2})
	require.NoError(t, err)

	// Act
	statuses, err := f.service.LockStatus(ctx, 2025)

	// Assert
	require.NoError(t, err)
	require.Len(t, statuses, 12)
	assert.Equal(t, "2025-01", statuses[0].Period)
	assert.Equal(t, "Ocak 2025", statuses[0].Label)
	assert.True(t, statuses[2].Locked)
	assert.False(t, statuses[3].Locked)
}
