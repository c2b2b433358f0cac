package attendance

import "github.com/bilgin-hr/puantaj-backend-go/internal/pkg/period"

// Summarize walks days 1..DaysInMonth(year, month0) of one employee's cells
// and produces the per-code counters and totals. Days missing from cells are
// read as the empty cell, so a completely empty month yields an all-zero
// summary. Pure function, no side effects.
func Summarize(cells map[int]Cell, year, month0 int) Summary {
	sum := Summary{CodeCounts: make(map[string]int, len(Codes))}
	for _, c := range Codes {
		sum.CodeCounts[c.Code] = 0
	}

	totalDays := period.DaysInMonth(year, month0)
	for day := 1; day <= totalDays; day++ {
		cell := cells[day]
		if _, ok := sum.CodeCounts[cell.Code]; ok {
			sum.CodeCounts[cell.Code]++
		}
		if IsPaidCode(cell.Code) {
			sum.TotalPaidDays++
		}
		if cell.Meal {
			sum.TotalMealDays++
		}
		sum.TotalFM += cell.FM
		sum.TotalUBGT += cell.UBGT
	}
	return sum
}
