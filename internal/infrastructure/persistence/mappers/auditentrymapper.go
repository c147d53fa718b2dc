package mappers

import (
	"fmt"

	"fiscalis/internal/domain/audit"
	"fiscalis/internal/infrastructure/persistence/models"
)

func AuditEntryToModel(e *audit.Entry) *models.AuditEntryModel {
	return &models.AuditEntryModel{
		ID:        e.ID(),
		Kind:      e.Kind(),
		Actor:     e.Actor(),
		Payload:   e.Payload(),
		CreatedAt: e.CreatedAt(),
	}
}

func AuditEntryToDomain(model *models.AuditEntryModel) (*audit.Entry, error) {
	entry, err := audit.ReconstructEntry(
		model.ID,
		model.Kind,
		model.Actor,
		model.Payload,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct audit entry: %w", err)
	}

	return entry, nil
}
