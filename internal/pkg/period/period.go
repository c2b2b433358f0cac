// Package period implements the calendar arithmetic the attendance ledger is
// keyed on: canonical "YYYY-MM" period keys and the Gregorian day classifier
// used by auto-fill and the export grid. Months are 0-based on input (January
// = 0) to match the rest of the API surface, and 1-based in rendered keys.
package period

import (
	"fmt"
	"time"
)

// MonthNames are the Turkish month names used in audit details and UI labels.
var MonthNames = [12]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// DayNames are the Turkish weekday names indexed by DayOfWeek (0 = Sunday).
var DayNames = [7]string{
	"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi",
}

// Key formats a year and 0-based month as the canonical period key, e.g.
// Key(2025, 0) == "2025-01".
func Key(year, month0 int) string {
	return fmt.Sprintf("%d-%02d", year, month0+1)
}

// Label renders a human-readable period label, e.g. "Ocak 2025". Used for
// audit detail strings.
func Label(year, month0 int) string {
	if month0 < 0 || month0 > 11 {
		return Key(year, month0)
	}
	return fmt.Sprintf("%s %d", MonthNames[month0], year)
}

// DaysInMonth returns the number of days in the given month, leap years
// included. time.Date normalizes day 0 of the next month to the last day of
// this one.
func DaysInMonth(year, month0 int) int {
	return time.Date(year, time.Month(month0+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayOfWeek returns the weekday of the given date with 0 = Sunday, matching
// the proleptic Gregorian calendar.
func DayOfWeek(year, month0, day int) int {
	return int(time.Date(year, time.Month(month0+1), day, 0, 0, 0, 0, time.UTC).Weekday())
}

// IsWeekend reports whether a DayOfWeek value falls on the weekly rest days
// (Saturday or Sunday).
func IsWeekend(dow int) bool {
	return dow == 0 || dow == 6
}
