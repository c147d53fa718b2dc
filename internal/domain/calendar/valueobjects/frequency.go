package valueobjects

import "fmt"

// Frequency is how often a calendar entry recurs.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnual    Frequency = "annual"
)

// NewFrequency validates and returns a frequency.
func NewFrequency(value string) (Frequency, error) {
	f := Frequency(value)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid frequency: %s", value)
	}
	return f, nil
}

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyAnnual:
		return true
	}
	return false
}

func (f Frequency) String() string {
	return string(f)
}
