package attendance

import "context"

// LedgerRepository is the attendance cell store: period key → employee ID →
// day of month → cell. A missing entry at any level reads as the zero cell.
// All mutations are rejected with ErrPeriodLocked while the period is locked;
// the lock check lives here, behind the store's mutex, so no call path can
// bypass it.
type LedgerRepository interface {
	// GetCell returns the stored cell or the zero cell. Never fails.
	GetCell(ctx context.Context, periodKey, employeeID string, day int) Cell

	// EmployeeCells returns a copy of one employee's cells for a period,
	// keyed by day of month. Missing days are simply absent.
	EmployeeCells(ctx context.Context, periodKey, employeeID string) map[int]Cell

	// SetCell stores a cell, creating intermediate maps as needed.
	SetCell(ctx context.Context, periodKey, employeeID string, day int, cell Cell) error

	// AutoFill overwrites the whole period for the given employees using the
	// weekday/weekend rule. Atomic: on a locked period nothing is written.
	AutoFill(ctx context.Context, periodKey string, employeeIDs []string, year, month0 int) error

	// ClearPeriod removes the entire period sub-tree.
	ClearPeriod(ctx context.Context, periodKey string) error

	// IsLocked reports whether a period is locked.
	IsLocked(ctx context.Context, periodKey string) bool

	// ToggleLock flips a period's lock membership and returns the new state.
	ToggleLock(ctx context.Context, periodKey string) bool
}
