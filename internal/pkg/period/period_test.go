package period

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "2025-01", Key(2025, 0))
	assert.Equal(t, "2025-12", Key(2025, 11))
	assert.Equal(t, "2023-06", Key(2023, 5))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Ocak 2025", Label(2025, 0))
	assert.Equal(t, "Aralık 2024", Label(2024, 11))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, 1), "leap year February")
	assert.Equal(t, 28, DaysInMonth(2023, 1))
	assert.Equal(t, 31, DaysInMonth(2025, 0))
	assert.Equal(t, 30, DaysInMonth(2025, 5))
	assert.Equal(t, 28, DaysInMonth(1900, 1), "1900 is not a leap year")
	assert.Equal(t, 29, DaysInMonth(2000, 1), "2000 is a leap year")
}

func TestDayOfWeek(t *testing.T) {
	// June 1 2025 is a Sunday.
	assert.Equal(t, 0, DayOfWeek(2025, 5, 1))
	assert.Equal(t, 1, DayOfWeek(2025, 5, 2))
	assert.Equal(t, 6, DayOfWeek(2025, 5, 7))
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(0))
	assert.True(t, IsWeekend(6))
	for dow := 1; dow <= 5; dow++ {
		assert.False(t, IsWeekend(dow))
	}
}
