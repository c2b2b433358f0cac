package export

import (
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/attendance"
)

// Request selects the period and optional location filter for an export.
type Request struct {
	attendance.PeriodRequest
	LocationID string `json:"location_id,omitempty"`
}

// Artifact is a generated download: the payload plus the filename and MIME
// type the handler should serve it under.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MikroRow is one employee's line of the flat Mikro CSV, a reduced cut of the
// full summary: the payroll system only ingests these seven derived figures.
type MikroRow struct {
	SicilNo     string
	FullName    string
	NormalDays  int     // X + H days
	AnnualLeave int     // Y1
	SickReport  int     // Y2
	UnpaidLeave int     // İ
	OvertimeFM  float64 // summed FM hours
	UBGT        float64 // summed UBGT hours
	AbsentDays  int     // D
}
