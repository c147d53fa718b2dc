package calendar

import (
	"fmt"
	"time"

	vo "fiscalis/internal/domain/calendar/valueobjects"
)

// PeriodLabel derives the declared-period label for a due date under the
// given frequency: month name and year for monthly, "Q{n} {year}" for
// quarterly, the bare year for annual.
func PeriodLabel(frequency vo.Frequency, due time.Time) string {
	switch frequency {
	case vo.FrequencyMonthly:
		return fmt.Sprintf("%s %d", due.Month().String(), due.Year())
	case vo.FrequencyQuarterly:
		quarter := (int(due.Month())-1)/3 + 1
		return fmt.Sprintf("Q%d %d", quarter, due.Year())
	case vo.FrequencyAnnual:
		return fmt.Sprintf("%d", due.Year())
	}
	return ""
}
