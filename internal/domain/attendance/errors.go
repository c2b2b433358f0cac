package attendance

import "errors"

// Attendance domain errors
var (
	// ErrPeriodLocked is returned by every ledger mutation attempted on a
	// locked period. The write is rejected as a whole; no partial state.
	ErrPeriodLocked = errors.New("period is locked for editing")

	ErrInvalidCode = errors.New("unrecognized status code")
	ErrInvalidDay  = errors.New("day is outside the selected month")
)
