package location

import "time"

// Location is one operational unit (branch) employees are assigned to.
type Location struct {
	ID           string
	Code         string // e.g. "LOK001"
	Name         string
	DefaultHours float64 // planned daily work hours, used by dashboard totals
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
