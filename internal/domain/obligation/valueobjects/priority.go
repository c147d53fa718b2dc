package valueobjects

import (
	"fmt"
	"time"
)

// Priority is derived at generation time from how soon the obligation is due.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// NewPriority validates and returns a priority.
func NewPriority(value string) (Priority, error) {
	p := Priority(value)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid obligation priority: %s", value)
	}
	return p, nil
}

// PriorityFromDueDate derives a priority from the day-granular distance
// between now and the due date: already past is urgent, within a week is
// high, within a month is medium, anything further out is low.
func PriorityFromDueDate(now, due time.Time) Priority {
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	days := int(dueDay.Sub(nowDay).Hours() / 24)

	switch {
	case days < 0:
		return PriorityUrgent
	case days <= 7:
		return PriorityHigh
	case days <= 30:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}
