// Package biztime provides utilities for fiscal timezone calculations.
// All storage and transport use UTC. The fiscal timezone is only used for
// calculating date boundaries (start/end of day, month, year) and the
// generation window.
//
// Design principles:
// - All time storage is in UTC
// - Window boundaries are calculated in the fiscal timezone first, then converted to UTC
// - Implicit Local timezone is prohibited
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default fiscal timezone.
	DefaultTimezone = "Europe/Paris"
)

var (
	fiscalLocation     *time.Location
	fiscalLocationOnce sync.Once
	initErr            error
)

// Init initializes the fiscal timezone. Should be called once at startup.
// If tz is empty, defaults to Europe/Paris.
func Init(tz string) error {
	fiscalLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		fiscalLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the fiscal timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize fiscal timezone %q: %v", tz, err))
	}
}

// Location returns the fiscal timezone location.
// If not explicitly initialized, automatically initializes with the default timezone.
func Location() *time.Location {
	if fiscalLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return fiscalLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DateOnly truncates a time to its calendar day as a UTC midnight. Due date
// comparisons in the engine are day-granular.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfYearUTC returns the start of year in the fiscal timezone, converted to UTC.
func StartOfYearUTC(year int) time.Time {
	startOfYear := time.Date(year, 1, 1, 0, 0, 0, 0, Location())
	return startOfYear.UTC()
}

// EndOfMonthUTC returns the end of month in the fiscal timezone, converted to UTC.
func EndOfMonthUTC(year int, month time.Month) time.Time {
	// Start of next month, minus 1 nanosecond
	nextMonth := time.Date(year, month+1, 1, 0, 0, 0, 0, Location())
	endOfMonth := nextMonth.Add(-time.Nanosecond)
	return endOfMonth.UTC()
}

// StartOfNextMonthUTC returns the first instant of the month after t's month
// in the fiscal timezone, converted to UTC. Used by the schedule host to
// fire the monthly tick.
func StartOfNextMonthUTC(t time.Time) time.Time {
	fiscal := t.In(Location())
	next := time.Date(fiscal.Year(), fiscal.Month()+1, 1, 0, 0, 0, 0, Location())
	return next.UTC()
}

// GenerationWindow returns the window a generation run covers as seen at
// "now": from January 1 of the current fiscal year through the end of the
// month that lies months after the current month. Both boundaries are
// calculated in the fiscal timezone and returned in UTC.
func GenerationWindow(now time.Time, months int) (time.Time, time.Time) {
	fiscal := now.In(Location())
	start := StartOfYearUTC(fiscal.Year())
	end := EndOfMonthUTC(fiscal.Year(), fiscal.Month()+time.Month(months))
	return start, end
}

// ToFiscalTimezone converts a UTC time to the fiscal timezone for display.
func ToFiscalTimezone(t time.Time) time.Time {
	return t.In(Location())
}

// ParseDateInFiscalTimezone parses a date string (YYYY-MM-DD) as fiscal
// timezone midnight, then returns the UTC equivalent.
func ParseDateInFiscalTimezone(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", dateStr, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t.UTC(), nil
}

// FormatInFiscalTimezone formats a UTC time as a string in the fiscal timezone.
func FormatInFiscalTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
