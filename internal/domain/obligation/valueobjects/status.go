package valueobjects

import "fmt"

// Status is the lifecycle status of an obligation. The generation engine
// only ever creates obligations in StatusPending; later transitions belong
// to obligation management.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

// NewStatus validates and returns a status.
func NewStatus(value string) (Status, error) {
	s := Status(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid obligation status: %s", value)
	}
	return s, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
