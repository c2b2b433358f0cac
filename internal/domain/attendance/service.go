package attendance

import "context"

// AttendanceService defines business logic for the attendance ledger. Every
// mutating operation checks the period lock (inside the ledger store, not at
// the call site) and emits one audit entry on success.
type AttendanceService interface {
	// GetGrid returns a period's cells and summaries for the employees the
	// caller may see, lazily defaulting unwritten cells.
	GetGrid(ctx context.Context, req GridRequest) (GridResponse, error)

	// SaveCell writes one employee-day cell.
	SaveCell(ctx context.Context, req SaveCellRequest) error

	// AutoFill initializes every day of the period for the visible employees:
	// weekends become weekly rest without meal, weekdays become worked with
	// meal. Overwrites existing cells. All-or-nothing per period.
	AutoFill(ctx context.Context, req AutoFillRequest) (AutoFillResponse, error)

	// ClearPeriod drops the entire period sub-tree from the ledger.
	ClearPeriod(ctx context.Context, req PeriodRequest) error

	// Summarize computes one employee's aggregate for a period.
	Summarize(ctx context.Context, req PeriodRequest, employeeID string) (Summary, error)

	// ToggleLock flips a period's lock flag and returns the new state.
	ToggleLock(ctx context.Context, req PeriodRequest) (ToggleLockResponse, error)

	// LockStatus lists the lock state of all twelve months of a year.
	LockStatus(ctx context.Context, year int) ([]LockStatus, error)
}
