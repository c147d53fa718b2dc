package mappers

import (
	"fmt"

	"fiscalis/internal/domain/obligation"
	vo "fiscalis/internal/domain/obligation/valueobjects"
	"fiscalis/internal/infrastructure/persistence/models"
	"fiscalis/internal/shared/biztime"
)

func ObligationToModel(o *obligation.Obligation) *models.ObligationModel {
	model := &models.ObligationModel{
		ID:                    o.ID(),
		UUID:                  o.UUID(),
		BusinessID:            o.BusinessID(),
		Title:                 o.Title(),
		Description:           o.Description(),
		Tag:                   o.Tag(),
		DueDate:               biztime.DateOnly(o.DueDate()),
		Status:                o.Status().String(),
		Priority:              o.Priority().String(),
		Period:                o.Period(),
		Link:                  o.Link(),
		GeneratedFromCalendar: o.GeneratedFromCalendar(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}

	if entryID := o.CalendarEntryID(); entryID != 0 {
		model.CalendarEntryID = &entryID
	}

	if len(o.Metadata()) > 0 {
		model.Metadata = o.Metadata()
	}

	return model
}

func ObligationToDomain(model *models.ObligationModel) (*obligation.Obligation, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid obligation status: %w", err)
	}

	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid obligation priority: %w", err)
	}

	var calendarEntryID uint
	if model.CalendarEntryID != nil {
		calendarEntryID = *model.CalendarEntryID
	}

	o, err := obligation.ReconstructObligation(
		model.ID,
		model.UUID,
		model.BusinessID,
		model.Title,
		model.Description,
		model.Tag,
		model.DueDate,
		status,
		priority,
		model.Period,
		model.Link,
		model.GeneratedFromCalendar,
		calendarEntryID,
		model.Metadata,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct obligation: %w", err)
	}

	return o, nil
}
