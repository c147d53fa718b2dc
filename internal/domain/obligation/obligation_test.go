package obligation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "fiscalis/internal/domain/obligation/valueobjects"
)

func TestNewGeneratedObligation(t *testing.T) {
	due := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	generatedAt := time.Date(2024, time.January, 10, 9, 30, 0, 0, time.UTC)

	o, err := NewGeneratedObligation(
		42, "VAT: quarterly declaration (Q1 2024)", "vat",
		due, vo.PriorityMedium, "Q1 2024", "File before end of month.", "https://example.org/form",
		7, "manual", generatedAt,
	)

	require.NoError(t, err)
	assert.NotEmpty(t, o.UUID())
	assert.Equal(t, uint(42), o.BusinessID())
	assert.Equal(t, vo.StatusPending, o.Status())
	assert.True(t, o.GeneratedFromCalendar())
	assert.Equal(t, uint(7), o.CalendarEntryID())

	metadata := o.Metadata()
	assert.Equal(t, true, metadata[MetadataKeyGenerated])
	assert.Equal(t, uint(7), metadata[MetadataKeyCalendarEntryID])
	assert.Equal(t, "manual", metadata[MetadataKeyTrigger])
	assert.Equal(t, "2024-01-10T09:30:00Z", metadata[MetadataKeyGeneratedAt])
}

func TestNewGeneratedObligation_Validation(t *testing.T) {
	due := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		businessID      uint
		title           string
		tag             string
		dueDate         time.Time
		calendarEntryID uint
	}{
		{"missing business", 0, "title", "vat", due, 7},
		{"missing title", 42, "", "vat", due, 7},
		{"missing tag", 42, "title", "", due, 7},
		{"zero due date", 42, "title", "vat", time.Time{}, 7},
		{"missing calendar entry", 42, "title", "vat", due, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGeneratedObligation(
				tt.businessID, tt.title, tt.tag, tt.dueDate,
				vo.PriorityLow, "", "", "", tt.calendarEntryID, "manual", time.Now(),
			)
			assert.Error(t, err)
		})
	}
}

func TestReconstructObligation_DefaultsNilMetadata(t *testing.T) {
	o, err := ReconstructObligation(
		1, "uuid-1", 42, "title", "", "vat",
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		vo.StatusPending, vo.PriorityLow, "", "",
		false, 0, nil, time.Now(), time.Now(),
	)

	require.NoError(t, err)
	assert.NotNil(t, o.Metadata())
	assert.False(t, o.GeneratedFromCalendar())
}
