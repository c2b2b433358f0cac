package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/attendance"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/audit"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/export"
)

// utf8BOM keeps Turkish characters intact when the CSV is opened in Excel.
const utf8BOM = "\uFEFF"

var mikroHeaders = []string{
	"Sicil No", "Ad Soyad", "Normal Gün", "Ücretli İzin (Y1)",
	"Raporlu Gün (Y2)", "Ücretsiz İzin (İ)", "Fazla Mesai", "UBGT", "Devamsız",
}

type ExportServiceImpl struct {
	attendanceService attendance.AttendanceService
	auditService      audit.AuditService
}

func NewExportService(
	attendanceService attendance.AttendanceService,
	auditService audit.AuditService,
) export.ExportService {
	return &ExportServiceImpl{
		attendanceService: attendanceService,
		auditService:      auditService,
	}
}

// MikroCSV implements export.ExportService.
func (s *ExportServiceImpl) MikroCSV(ctx context.Context, req export.Request) (export.Artifact, error) {
	grid, err := s.attendanceService.GetGrid(ctx, attendance.GridRequest{
		PeriodRequest: req.PeriodRequest,
		LocationID:    req.LocationID,
	})
	if err != nil {
		return export.Artifact{}, err
	}

	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(mikroHeaders); err != nil {
		return export.Artifact{}, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, emp := range grid.Employees {
		row := mikroRow(emp)
		record := []string{
			row.SicilNo,
			row.FullName,
			strconv.Itoa(row.NormalDays),
			strconv.Itoa(row.AnnualLeave),
			strconv.Itoa(row.SickReport),
			strconv.Itoa(row.UnpaidLeave),
			strconv.FormatFloat(row.OvertimeFM, 'f', 1, 64),
			strconv.FormatFloat(row.UBGT, 'f', 1, 64),
			strconv.Itoa(row.AbsentDays),
		}
		if err := w.Write(record); err != nil {
			return export.Artifact{}, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return export.Artifact{}, fmt.Errorf("failed to flush csv: %w", err)
	}

	s.auditService.Record(ctx, audit.ActionExport,
		fmt.Sprintf("Mikro Excel Çıktısı alındı (%s)", grid.Period))

	return export.Artifact{
		Filename:    fmt.Sprintf("Mikro_Export_%s.csv", grid.Period),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

// mikroRow reduces one grid row to the seven figures Mikro ingests. Weekly
// rest counts into the normal days column alongside worked days.
func mikroRow(emp attendance.GridEmployee) export.MikroRow {
	sum := emp.Summary
	return export.MikroRow{
		SicilNo:     emp.SicilNo,
		FullName:    emp.FullName,
		NormalDays:  sum.CodeCounts[attendance.CodeWorked] + sum.CodeCounts[attendance.CodeWeeklyRest],
		AnnualLeave: sum.CodeCounts[attendance.CodeAnnualLeave],
		SickReport:  sum.CodeCounts[attendance.CodeSickReport],
		UnpaidLeave: sum.CodeCounts[attendance.CodeUnpaidLeave],
		OvertimeFM:  sum.TotalFM,
		UBGT:        sum.TotalUBGT,
		AbsentDays:  sum.CodeCounts[attendance.CodeAbsent],
	}
}
