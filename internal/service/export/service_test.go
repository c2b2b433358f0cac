package export

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/attendance"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/audit"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/employee"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/export"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/location"
	"github.com/bilgin-hr/puantaj-backend-go/internal/repository/memory"
	attendanceservice "github.com/bilgin-hr/puantaj-backend-go/internal/service/attendance"
	auditservice "github.com/bilgin-hr/puantaj-backend-go/internal/service/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fixture struct {
	service   export.ExportService
	ledger    *memory.LedgerRepository
	auditRepo *memory.AuditRepository
	employees []employee.Employee
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ledgerRepo := memory.NewLedgerRepository()
	employeeRepo := memory.NewEmployeeRepository()
	locationRepo := memory.NewLocationRepository()
	auditRepo := memory.NewAuditRepository()
	auditSvc := auditservice.NewAuditService(auditRepo)
	attendanceSvc := attendanceservice.NewAttendanceService(ledgerRepo, employeeRepo, locationRepo, auditSvc)

	ctx := context.Background()
	loc, err := locationRepo.Create(ctx, location.Location{Code: "LOK001", Name: "İstanbul Merkez", DefaultHours: 8})
	require.NoError(t, err)

	emps := make([]employee.Employee, 0, 2)
	for i, name := range []string{"Ahmet Yılmaz", "Ayşe Demir"} {
		emp, err := employeeRepo.Create(ctx, employee.Employee{
			SicilNo:    []string{"05001", "05002"}[i],
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
		service:   NewExportService(attendanceSvc, auditSvc),
		ledger:    ledgerRepo,
		auditRepo: auditRepo,
		employees: emps,
	}
}

func june2025() export.Request {
	return export.Request{PeriodRequest: attendance.PeriodRequest{Year: 2025, Month0: 5}}
}

func setCell(t *testing.T, f *fixture, empIdx, day int, cell attendance.Cell) {
	t.Helper()
	err := f.ledger.SetCell(context.Background(), "2025-06", f.employees[empIdx].ID, day, cell)
	require.NoError(t, err)
}

func TestMikroCSV(t *testing.T) {
	// Arrange: first employee has a mixed month, second stays empty.
	f := newFixture(t)
	setCell(t, f, 0, 2, attendance.Cell{Code: attendance.CodeWorked, FM: 2.5, Meal: true})
	setCell(t, f, 0, 3, attendance.Cell{Code: attendance.CodeWorked, UBGT: 4, Meal: true})
	setCell(t, f, 0, 7, attendance.Cell{Code: attendance.CodeWeeklyRest})
	setCell(t, f, 0, 9, attendance.Cell{Code: attendance.CodeAnnualLeave})
	setCell(t, f, 0, 10, attendance.Cell{Code: attendance.CodeSickReport})
	setCell(t, f, 0, 11, attendance.Cell{Code: attendance.CodeUnpaidLeave})
	setCell(t, f, 0, 12, attendance.Cell{Code: attendance.CodeAbsent})

	// Act
	artifact, err := f.service.MikroCSV(context.Background(), june2025())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Mikro_Export_2025-06.csv", artifact.Filename)
	assert.True(t, bytes.HasPrefix(artifact.Data, []byte("\uFEFF")))

	lines := strings.Split(strings.TrimRight(strings.TrimPrefix(string(artifact.Data), "\uFEFF"), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Sicil No,Ad Soyad,Normal Gün,Ücretli İzin (Y1),Raporlu Gün (Y2),Ücretsiz İzin (İ),Fazla Mesai,UBGT,Devamsız", lines[0])
	assert.Equal(t, "05001,Ahmet Yılmaz,3,1,1,1,2.5,4.0,1", lines[1])
	// Roster completeness: zero activity still yields a row.
	assert.Equal(t, "05002,Ayşe Demir,0,0,0,0,0.0,0.0,0", lines[2])

	entries := f.auditRepo.List(context.Background(), audit.ActionExport, 10)
	require.Len(t, entries, 1)
	assert.Equal(t, "Mikro Excel Çıktısı alındı (2025-06)", entries[0].Detail)
}

func TestGridXLSX(t *testing.T) {
	// Arrange
	f := newFixture(t)
	setCell(t, f, 0, 2, attendance.Cell{Code: attendance.CodeWorked, FM: 2.5, Meal: true})
	setCell(t, f, 0, 7, attendance.Cell{Code: attendance.CodeWeeklyRest})

	// Act
	artifact, err := f.service.GridXLSX(context.Background(), june2025())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "BILGIN_KURUMSAL_RAPOR_2025-06.xlsx", artifact.Filename)

	wb, err := excelize.OpenReader(bytes.NewReader(artifact.Data))
	require.NoError(t, err)
	defer wb.Close()

	require.Contains(t, wb.GetSheetList(), "Puantaj Raporu")

	// Header row.
	v, err := wb.GetCellValue("Puantaj Raporu", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Sıra", v)
	v, _ = wb.GetCellValue("Puantaj Raporu", "I1")
	assert.Equal(t, "1", v)
	v, _ = wb.GetCellValue("Puantaj Raporu", "AN1")
	assert.Equal(t, "Toplam FM", v)

	// First employee block: rows 2-5, identity merged at the top row.
	v, _ = wb.GetCellValue("Puantaj Raporu", "B2")
	assert.Equal(t, "05001", v)
	v, _ = wb.GetCellValue("Puantaj Raporu", "C2")
	assert.Equal(t, "Ahmet Yılmaz", v)
	v, _ = wb.GetCellValue("Puantaj Raporu", "H2")
	assert.Equal(t, "FM", v)
	v, _ = wb.GetCellValue("Puantaj Raporu", "H5")
	assert.Equal(t, "KOD", v)

	// Day 2 (column J): overtime on the FM layer, code on the KOD layer.
	v, _ = wb.GetCellValue("Puantaj Raporu", "J2")
	assert.Equal(t, "2.5", v)
	v, _ = wb.GetCellValue("Puantaj Raporu", "J5")
	assert.Equal(t, "X", v)
	// Day 7 is weekly rest, day 1 was never written.
	v, _ = wb.GetCellValue("Puantaj Raporu", "O5")
	assert.Equal(t, "H", v)
	v, _ = wb.GetCellValue("Puantaj Raporu", "I5")
	assert.Equal(t, ".", v)

	// June has 30 days, so day column 31 (AM) is blank.
	v, _ = wb.GetCellValue("Puantaj Raporu", "AM5")
	assert.Equal(t, "", v)

	// Summary columns: total FM on the FM layer, paid days on the KOD layer.
	v, _ = wb.GetCellValue("Puantaj Raporu", "AN2")
	assert.Equal(t, "2.5", v)
	v, _ = wb.GetCellValue("Puantaj Raporu", "AU5")
	assert.Equal(t, "2", v)

	// Second employee block starts at row 6.
	v, _ = wb.GetCellValue("Puantaj Raporu", "C6")
	assert.Equal(t, "Ayşe Demir", v)

	entries := f.auditRepo.List(context.Background(), audit.ActionExport, 10)
	require.Len(t, entries, 1)
	assert.Equal(t, "Kurumsal Puantaj Raporu indirildi (2025-06)", entries[0].Detail)
}
