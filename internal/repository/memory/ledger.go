// Package memory holds the in-process data stores. The application keeps all
// state resident for the life of the process (there is deliberately no
// database); every store is safe for concurrent request handlers.
package memory

import (
	"context"
	"sync"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/attendance"
	"github.com/bilgin-hr/puantaj-backend-go/internal/pkg/period"
)

// LedgerRepository is the attendance cell store plus the locked-period set.
// The lock check happens here, under the same mutex as the write, so a locked
// period cannot be mutated through any call path.
type LedgerRepository struct {
	mu      sync.RWMutex
	periods map[string]map[string]map[int]attendance.Cell // period → employee → day
	locked  map[string]struct{}
}

func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		periods: make(map[string]map[string]map[int]attendance.Cell),
		locked:  make(map[string]struct{}),
	}
}

// GetCell implements attendance.LedgerRepository. A triple that was never
// written reads as the zero cell.
func (r *LedgerRepository) GetCell(_ context.Context, periodKey, employeeID string, day int) attendance.Cell {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.periods[periodKey][employeeID][day]
}

// EmployeeCells implements attendance.LedgerRepository.
func (r *LedgerRepository) EmployeeCells(_ context.Context, periodKey, employeeID string) map[int]attendance.Cell {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src := r.periods[periodKey][employeeID]
	out := make(map[int]attendance.Cell, len(src))
	for day, cell := range src {
		out[day] = cell
	}
	return out
}

// SetCell implements attendance.LedgerRepository.
func (r *LedgerRepository) SetCell(_ context.Context, periodKey, employeeID string, day int, cell attendance.Cell) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, isLocked := r.locked[periodKey]; isLocked {
		return attendance.ErrPeriodLocked
	}

	// Storing the zero cell is the same as erasing the day.
	if cell.IsZero() {
		delete(r.periods[periodKey][employeeID], day)
		return nil
	}

	p, ok := r.periods[periodKey]
	if !ok {
		p = make(map[string]map[int]attendance.Cell)
		r.periods[periodKey] = p
	}
	e, ok := p[employeeID]
	if !ok {
		e = make(map[int]attendance.Cell)
		p[employeeID] = e
	}
	e[day] = cell
	return nil
}

// AutoFill implements attendance.LedgerRepository: weekends become weekly
// rest without meal allowance, weekdays become worked with meal allowance,
// hour fields reset. Replaces whatever the targeted employees had in the
// period. Nothing is written when the period is locked.
func (r *LedgerRepository) AutoFill(_ context.Context, periodKey string, employeeIDs []string, year, month0 int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, isLocked := r.locked[periodKey]; isLocked {
		return attendance.ErrPeriodLocked
	}

	p, ok := r.periods[periodKey]
	if !ok {
		p = make(map[string]map[int]attendance.Cell)
		r.periods[periodKey] = p
	}

	totalDays := period.DaysInMonth(year, month0)
	for _, empID := range employeeIDs {
		cells := make(map[int]attendance.Cell, totalDays)
		for day := 1; day <= totalDays; day++ {
			if period.IsWeekend(period.DayOfWeek(year, month0, day)) {
				cells[day] = attendance.Cell{Code: attendance.CodeWeeklyRest}
			} else {
				cells[day] = attendance.Cell{Code: attendance.CodeWorked, Meal: true}
			}
		}
		p[empID] = cells
	}
	return nil
}

// ClearPeriod implements attendance.LedgerRepository.
func (r *LedgerRepository) ClearPeriod(_ context.Context, periodKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, isLocked := r.locked[periodKey]; isLocked {
		return attendance.ErrPeriodLocked
	}
	delete(r.periods, periodKey)
	return nil
}

// IsLocked implements attendance.LedgerRepository.
func (r *LedgerRepository) IsLocked(_ context.Context, periodKey string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.locked[periodKey]
	return ok
}

// ToggleLock implements attendance.LedgerRepository.
func (r *LedgerRepository) ToggleLock(_ context.Context, periodKey string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.locked[periodKey]; ok {
		delete(r.locked, periodKey)
		return false
	}
	r.locked[periodKey] = struct{}{}
	return true
}
