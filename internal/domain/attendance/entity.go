package attendance

// Status codes as they appear on the puantaj grid and in the Mikro transfer
// file. The short tokens are fixed by the payroll side and are not
// translatable.
const (
	CodeWorked      = "X"  // Çalıştı
	CodeWeeklyRest  = "H"  // Hafta Tatili
	CodeAnnualLeave = "Y1" // Yıllık İzin
	CodeSickReport  = "Y2" // Raporlu
	CodeUnpaidLeave = "İ"  // Ücretsiz İzin
	CodeOnDuty      = "G"  // Görevli
	CodeAbsent      = "D"  // Devamsız
	CodeMaternity   = "A"  // Analık İzni
	CodePaternity   = "B"  // Babalık İzni
	CodeNursing     = "S"  // Süt İzni
	CodeBereavement = "V"  // Vefat İzni
	CodeMarriage    = "E"  // Evlilik İzni
)

// CodeInfo describes one status code: its display label, whether a day under
// this code counts toward the paid-day total, and whether it counts as actual
// work time (X and G accrue the location's default daily hours).
type CodeInfo struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Paid  bool   `json:"paid"`
	Work  bool   `json:"work"`
}

// Codes is the fixed classification table, in grid display order. The empty
// code is deliberately absent: an empty cell counts toward nothing.
var Codes = []CodeInfo{
	{Code: CodeWorked, Label: "Çalıştı", Paid: true, Work: true},
	{Code: CodeWeeklyRest, Label: "Hafta Tatili", Paid: true},
	{Code: CodeAnnualLeave, Label: "Yıllık İzin", Paid: true},
	{Code: CodeSickReport, Label: "Raporlu", Paid: true},
	{Code: CodeUnpaidLeave, Label: "Ücretsiz İzin"},
	{Code: CodeOnDuty, Label: "Görevli", Paid: true, Work: true},
	{Code: CodeAbsent, Label: "Devamsız"},
	{Code: CodeMaternity, Label: "Analık İzni", Paid: true},
	{Code: CodePaternity, Label: "Babalık İzni", Paid: true},
	{Code: CodeNursing, Label: "Süt İzni", Paid: true},
	{Code: CodeBereavement, Label: "Vefat İzni", Paid: true},
	{Code: CodeMarriage, Label: "Evlilik İzni", Paid: true},
}

var codeIndex = func() map[string]CodeInfo {
	m := make(map[string]CodeInfo, len(Codes))
	for _, c := range Codes {
		m[c.Code] = c
	}
	return m
}()

// IsValidCode reports whether code is one of the recognized status codes or
// empty.
func IsValidCode(code string) bool {
	if code == "" {
		return true
	}
	_, ok := codeIndex[code]
	return ok
}

// IsPaidCode reports whether a day under this code is compensated.
func IsPaidCode(code string) bool {
	return codeIndex[code].Paid
}

// IsWorkCode reports whether this code represents actual work time.
func IsWorkCode(code string) bool {
	return codeIndex[code].Work
}

// Cell is one employee's attendance record for one calendar day. The zero
// value is the canonical "empty" cell; a day that was never written reads
// back as exactly this value.
type Cell struct {
	Code string  `json:"code"`
	FM   float64 `json:"fm"`   // overtime hours (fazla mesai)
	UBGT float64 `json:"ubgt"` // public-holiday / night-shift hours
	Meal bool    `json:"meal"` // meal allowance used
}

// IsZero reports whether the cell carries no data.
func (c Cell) IsZero() bool {
	return c.Code == "" && c.FM == 0 && c.UBGT == 0 && !c.Meal
}

// Summary is the per-employee aggregate over one period: a counter per
// recognized code plus the running totals the grid and the exports show.
type Summary struct {
	CodeCounts    map[string]int `json:"code_counts"`
	TotalPaidDays int            `json:"total_paid_days"`
	TotalMealDays int            `json:"total_meal_days"`
	TotalFM       float64        `json:"total_fm"`
	TotalUBGT     float64        `json:"total_ubgt"`
}
