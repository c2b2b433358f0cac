package export

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/attendance"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/audit"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/export"
	"github.com/bilgin-hr/puantaj-backend-go/internal/pkg/period"
	"github.com/xuri/excelize/v2"
)

const (
	gridSheet = "Puantaj Raporu"

	identityCols = 8  // Sıra .. Katman
	dayCols      = 31 // fixed, independent of month length
	summaryCols  = 8
	totalCols    = identityCols + dayCols + summaryCols
)

var gridHeaders = func() []interface{} {
	h := []interface{}{
		"Sıra", "Sicil No", "Ad Soyad", "Görevi",
		"İşe Giriş Tarihi", "İşten Çıkış Tarihi", "Lokasyon", "Katman",
	}
	for d := 1; d <= dayCols; d++ {
		h = append(h, strconv.Itoa(d))
	}
	return append(h,
		"Toplam FM", "Toplam UBGT", "Toplam Yemek", "Hafta Tatili (HT)",
		"Yıllık İzin", "Raporlu", "Ücretsiz İzin", "Ücretli Gün Toplamı")
}()

// gridStyles holds the precomputed style IDs of one workbook.
type gridStyles struct {
	header         int
	identity       int
	body           int
	bodyWeekend    int
	bottom         int
	bottomWeekend  int
	codeRest       int
	codeRestWknd   int
	codeWorked     int
	codeWorkedWknd int
	summary        int
	summaryBottom  int
}

// GridXLSX implements export.ExportService.
func (s *ExportServiceImpl) GridXLSX(ctx context.Context, req export.Request) (export.Artifact, error) {
	grid, err := s.attendanceService.GetGrid(ctx, attendance.GridRequest{
		PeriodRequest: req.PeriodRequest,
		LocationID:    req.LocationID,
	})
	if err != nil {
		return export.Artifact{}, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", gridSheet); err != nil {
		return export.Artifact{}, fmt.Errorf("failed to rename sheet: %w", err)
	}
	showGridLines := false
	if err := f.SetSheetView(gridSheet, 0, &excelize.ViewOptions{ShowGridLines: &showGridLines}); err != nil {
		return export.Artifact{}, fmt.Errorf("failed to set sheet view: %w", err)
	}

	styles, err := newGridStyles(f)
	if err != nil {
		return export.Artifact{}, err
	}

	weekend := weekendDays(grid.Year, grid.Month0, grid.TotalDays)

	if err := writeGridHeader(f, styles); err != nil {
		return export.Artifact{}, err
	}
	for i, emp := range grid.Employees {
		if err := writeEmployeeBlock(f, styles, i, emp, grid.TotalDays, weekend); err != nil {
			return export.Artifact{}, err
		}
	}
	if err := setGridColumnWidths(f); err != nil {
		return export.Artifact{}, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return export.Artifact{}, fmt.Errorf("failed to render workbook: %w", err)
	}

	s.auditService.Record(ctx, audit.ActionExport,
		fmt.Sprintf("Kurumsal Puantaj Raporu indirildi (%s)", grid.Period))

	return export.Artifact{
		Filename:    fmt.Sprintf("BILGIN_KURUMSAL_RAPOR_%s.xlsx", grid.Period),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

// weekendDays marks which days of the month fall on Saturday or Sunday.
func weekendDays(year, month0, totalDays int) map[int]bool {
	out := make(map[int]bool, 10)
	for d := 1; d <= totalDays; d++ {
		if period.IsWeekend(period.DayOfWeek(year, month0, d)) {
			out[d] = true
		}
	}
	return out
}

func newGridStyles(f *excelize.File) (gridStyles, error) {
	var st gridStyles
	var err error

	thin := func(color string) []excelize.Border {
		return []excelize.Border{
			{Type: "top", Color: color, Style: 1},
			{Type: "bottom", Color: color, Style: 1},
			{Type: "left", Color: color, Style: 1},
			{Type: "right", Color: color, Style: 1},
		}
	}
	// medium closes an employee block with a heavier bottom edge.
	medium := func(color string) []excelize.Border {
		return []excelize.Border{
			{Type: "top", Color: color, Style: 1},
			{Type: "bottom", Color: "252F3C", Style: 2},
			{Type: "left", Color: color, Style: 1},
			{Type: "right", Color: color, Style: 1},
		}
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	centerWrap := &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}
	fill := func(color string) excelize.Fill {
		return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
	}

	if st.header, err = f.NewStyle(&excelize.Style{
		Fill:      fill("252F3C"),
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 10},
		Alignment: centerWrap,
		Border:    thin("CCCCCC"),
	}); err != nil {
		return st, fmt.Errorf("failed to build header style: %w", err)
	}
	if st.identity, err = f.NewStyle(&excelize.Style{
		Fill:      fill("CFE5FF"),
		Font:      &excelize.Font{Bold: true, Color: "252F9C", Size: 9},
		Alignment: centerWrap,
		Border:    medium("E0E0E0"),
	}); err != nil {
		return st, fmt.Errorf("failed to build identity style: %w", err)
	}
	if st.body, err = f.NewStyle(&excelize.Style{
		Alignment: center,
		Border:    thin("E0E0E0"),
	}); err != nil {
		return st, fmt.Errorf("failed to build body style: %w", err)
	}
	if st.bodyWeekend, err = f.NewStyle(&excelize.Style{
		Fill:      fill("FEE2E2"),
		Alignment: center,
		Border:    thin("E0E0E0"),
	}); err != nil {
		return st, fmt.Errorf("failed to build weekend style: %w", err)
	}
	if st.bottom, err = f.NewStyle(&excelize.Style{
		Alignment: center,
		Border:    medium("E0E0E0"),
	}); err != nil {
		return st, fmt.Errorf("failed to build bottom style: %w", err)
	}
	if st.bottomWeekend, err = f.NewStyle(&excelize.Style{
		Fill:      fill("FEE2E2"),
		Alignment: center,
		Border:    medium("E0E0E0"),
	}); err != nil {
		return st, fmt.Errorf("failed to build weekend bottom style: %w", err)
	}
	if st.codeRest, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FF0000"},
		Alignment: center,
		Border:    medium("E0E0E0"),
	}); err != nil {
		return st, fmt.Errorf("failed to build rest code style: %w", err)
	}
	if st.codeRestWknd, err = f.NewStyle(&excelize.Style{
		Fill:      fill("FEE2E2"),
		Font:      &excelize.Font{Bold: true, Color: "FF0000"},
		Alignment: center,
		Border:    medium("E0E0E0"),
	}); err != nil {
		return st, fmt.Errorf("failed to build rest code weekend style: %w", err)
	}
	if st.codeWorked, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "006400"},
		Alignment: center,
		Border:    medium("E0E0E0"),
	}); err != nil {
		return st, fmt.Errorf("failed to build worked code style: %w", err)
	}
	if st.codeWorkedWknd, err = f.NewStyle(&excelize.Style{
		Fill:      fill("FEE2E2"),
		Font:      &excelize.Font{Bold: true, Color: "006400"},
		Alignment: center,
		Border:    medium("E0E0E0"),
	}); err != nil {
		return st, fmt.Errorf("failed to build worked code weekend style: %w", err)
	}
	if st.summary, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 9},
		Alignment: center,
		Border:    thin("E0E0E0"),
	}); err != nil {
		return st, fmt.Errorf("failed to build summary style: %w", err)
	}
	if st.summaryBottom, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 9},
		Alignment: center,
		Border:    medium("E0E0E0"),
	}); err != nil {
		return st, fmt.Errorf("failed to build summary bottom style: %w", err)
	}
	return st, nil
}

func writeGridHeader(f *excelize.File, st gridStyles) error {
	if err := f.SetSheetRow(gridSheet, "A1", &gridHeaders); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	if err := f.SetRowHeight(gridSheet, 1, 35); err != nil {
		return fmt.Errorf("failed to set header height: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(totalCols, 1)
	if err := f.SetCellStyle(gridSheet, "A1", last, st.header); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}
	return nil
}

// writeEmployeeBlock renders one employee as a 4-row block: overtime, UBGT,
// meal and status code layers, with identity columns merged down the block.
func writeEmployeeBlock(f *excelize.File, st gridStyles, idx int, emp attendance.GridEmployee, totalDays int, weekend map[int]bool) error {
	top := 2 + idx*4
	bottom := top + 3

	exitDate := emp.ExitDate
	if exitDate == "" {
		exitDate = "—"
	}

	fmRow := []interface{}{idx + 1, emp.SicilNo, emp.FullName, emp.Duty, emp.HireDate, exitDate, emp.LocationName, "FM"}
	ubgtRow := []interface{}{"", "", "", "", "", "", "", "UBGT"}
	mealRow := []interface{}{"", "", "", "", "", "", "", "YEMEK"}
	codeRow := []interface{}{"", "", "", "", "", "", "", "KOD"}

	for d := 1; d <= dayCols; d++ {
		if d > totalDays {
			fmRow = append(fmRow, "")
			ubgtRow = append(ubgtRow, "")
			mealRow = append(mealRow, "")
			codeRow = append(codeRow, "")
			continue
		}
		cell := emp.Cells[d]
		meal := 0
		if cell.Meal {
			meal = 1
		}
		code := cell.Code
		if code == "" {
			code = "."
		}
		fmRow = append(fmRow, cell.FM)
		ubgtRow = append(ubgtRow, cell.UBGT)
		mealRow = append(mealRow, meal)
		codeRow = append(codeRow, code)
	}

	sum := emp.Summary
	fmRow = append(fmRow, strconv.FormatFloat(sum.TotalFM, 'f', 1, 64), "", "", "", "", "", "", "")
	ubgtRow = append(ubgtRow, "", strconv.FormatFloat(sum.TotalUBGT, 'f', 1, 64), "", "", "", "", "", "")
	mealRow = append(mealRow, "", "", sum.TotalMealDays, "", "", "", "", "")
	codeRow = append(codeRow, "", "", "",
		sum.CodeCounts[attendance.CodeWeeklyRest],
		sum.CodeCounts[attendance.CodeAnnualLeave],
		sum.CodeCounts[attendance.CodeSickReport],
		sum.CodeCounts[attendance.CodeUnpaidLeave],
		sum.TotalPaidDays)

	for i, row := range [][]interface{}{fmRow, ubgtRow, mealRow, codeRow} {
		anchor, _ := excelize.CoordinatesToCellName(1, top+i)
		r := row
		if err := f.SetSheetRow(gridSheet, anchor, &r); err != nil {
			return fmt.Errorf("failed to write employee row: %w", err)
		}
		if err := f.SetRowHeight(gridSheet, top+i, 22); err != nil {
			return fmt.Errorf("failed to set row height: %w", err)
		}
	}

	// Identity card: columns A..G merged over the four layer rows.
	for col := 1; col <= identityCols-1; col++ {
		from, _ := excelize.CoordinatesToCellName(col, top)
		to, _ := excelize.CoordinatesToCellName(col, bottom)
		if err := f.MergeCell(gridSheet, from, to); err != nil {
			return fmt.Errorf("failed to merge identity column: %w", err)
		}
		if err := f.SetCellStyle(gridSheet, from, to, st.identity); err != nil {
			return fmt.Errorf("failed to style identity column: %w", err)
		}
	}

	for row := top; row <= bottom; row++ {
		isBottom := row == bottom
		for col := identityCols; col <= totalCols; col++ {
			day := col - identityCols
			isDay := day >= 1 && day <= dayCols
			isSummary := col > identityCols+dayCols

			style := st.body
			switch {
			case isSummary && isBottom:
				style = st.summaryBottom
			case isSummary:
				style = st.summary
			case isDay && weekend[day] && isBottom:
				style = st.bottomWeekend
			case isDay && weekend[day]:
				style = st.bodyWeekend
			case isBottom:
				style = st.bottom
			}
			if isBottom && isDay && day <= totalDays {
				switch emp.Cells[day].Code {
				case attendance.CodeWeeklyRest:
					style = st.codeRest
					if weekend[day] {
						style = st.codeRestWknd
					}
				case attendance.CodeWorked:
					style = st.codeWorked
					if weekend[day] {
						style = st.codeWorkedWknd
					}
				}
			}

			cell, _ := excelize.CoordinatesToCellName(col, row)
			if err := f.SetCellStyle(gridSheet, cell, cell, style); err != nil {
				return fmt.Errorf("failed to style cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

func setGridColumnWidths(f *excelize.File) error {
	widths := []struct {
		from, to int
		width    float64
	}{
		{1, 1, 6}, {2, 2, 12}, {3, 3, 25}, {4, 4, 20},
		{5, 6, 14}, {7, 7, 20}, {8, 8, 9},
		{identityCols + 1, identityCols + dayCols, 4.5},
		{identityCols + dayCols + 1, totalCols, 14},
	}
	for _, w := range widths {
		from, _ := excelize.ColumnNumberToName(w.from)
		to, _ := excelize.ColumnNumberToName(w.to)
		if err := f.SetColWidth(gridSheet, from, to, w.width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}
	return nil
}
