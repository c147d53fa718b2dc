package calendar

import (
	"time"

	vo "fiscalis/internal/domain/calendar/valueobjects"
)

// DueDates evaluates the entry against an inclusive [start, end] window and
// returns the concrete due dates it implies, in chronological order. The
// result is a pure function of the entry and the window, so callers may
// re-evaluate freely.
//
// Frequency semantics:
//   - monthly: one date per calendar month, on the anchor day
//   - quarterly: one date per calendar quarter, in the quarter's third month
//     (March, June, September, December), on the anchor day
//   - annual: one date per year, on the anchor month and day
//
// When the anchor day exceeds the month's length it clamps to the month's
// last day (day 31 in February yields February 29 or 28). Only dates falling
// inside the window are emitted. A malformed entry (missing anchor day, or an
// annual entry without an anchor month) yields an empty schedule rather than
// an error.
func (e *Entry) DueDates(start, end time.Time) []time.Time {
	if e.anchorDay < 1 || end.Before(start) {
		return nil
	}

	switch e.frequency {
	case vo.FrequencyMonthly:
		return e.monthlyDueDates(start, end)
	case vo.FrequencyQuarterly:
		return e.quarterlyDueDates(start, end)
	case vo.FrequencyAnnual:
		return e.annualDueDates(start, end)
	}
	return nil
}

func (e *Entry) monthlyDueDates(start, end time.Time) []time.Time {
	var dates []time.Time

	year, month := start.Year(), start.Month()
	for !afterMonth(year, month, end) {
		due := clampedDate(year, month, e.anchorDay)
		if inWindow(due, start, end) {
			dates = append(dates, due)
		}
		year, month = nextMonth(year, month)
	}
	return dates
}

func (e *Entry) quarterlyDueDates(start, end time.Time) []time.Time {
	var dates []time.Time

	// Quarters settle in their third month.
	for year := start.Year(); year <= end.Year(); year++ {
		for _, month := range []time.Month{time.March, time.June, time.September, time.December} {
			due := clampedDate(year, month, e.anchorDay)
			if inWindow(due, start, end) {
				dates = append(dates, due)
			}
		}
	}
	return dates
}

func (e *Entry) annualDueDates(start, end time.Time) []time.Time {
	if e.anchorMonth < time.January || e.anchorMonth > time.December {
		return nil
	}

	var dates []time.Time
	for year := start.Year(); year <= end.Year(); year++ {
		due := clampedDate(year, e.anchorMonth, e.anchorDay)
		if inWindow(due, start, end) {
			dates = append(dates, due)
		}
	}
	return dates
}

// clampedDate builds a UTC midnight date, clamping day to the month's length.
func clampedDate(year int, month time.Month, day int) time.Time {
	// Day zero of the next month is the last day of this one.
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func inWindow(due, start, end time.Time) bool {
	return !due.Before(start) && !due.After(end)
}

func afterMonth(year int, month time.Month, end time.Time) bool {
	if year != end.Year() {
		return year > end.Year()
	}
	return month > end.Month()
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
