package mappers

import (
	"fmt"
	"time"

	"fiscalis/internal/domain/calendar"
	vo "fiscalis/internal/domain/calendar/valueobjects"
	"fiscalis/internal/infrastructure/persistence/models"
)

func CalendarEntryToModel(e *calendar.Entry) *models.CalendarEntryModel {
	return &models.CalendarEntryModel{
		ID:            e.ID(),
		Category:      e.Category(),
		Subcategory:   e.Subcategory(),
		Tag:           e.Tag(),
		Kind:          e.Kind(),
		Frequency:     e.Frequency().String(),
		AnchorDay:     e.AnchorDay(),
		AnchorMonth:   int(e.AnchorMonth()),
		Detail:        e.Detail(),
		Comment:       e.Comment(),
		FormReference: e.FormReference(),
		Link:          e.Link(),
		CreatedAt:     e.CreatedAt(),
		UpdatedAt:     e.UpdatedAt(),
	}
}

func CalendarEntryToDomain(model *models.CalendarEntryModel) (*calendar.Entry, error) {
	frequency, err := vo.NewFrequency(model.Frequency)
	if err != nil {
		return nil, fmt.Errorf("invalid frequency: %w", err)
	}

	entry, err := calendar.ReconstructEntry(
		model.ID,
		model.Category,
		model.Subcategory,
		model.Tag,
		model.Kind,
		frequency,
		model.AnchorDay,
		time.Month(model.AnchorMonth),
		model.Detail,
		model.Comment,
		model.FormReference,
		model.Link,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct calendar entry: %w", err)
	}

	return entry, nil
}
