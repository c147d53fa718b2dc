package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fiscalis/internal/domain/audit"
	"fiscalis/internal/infrastructure/persistence/mappers"
	"fiscalis/internal/shared/db"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Append(ctx context.Context, entry *audit.Entry) error {
	model := mappers.AuditEntryToModel(entry)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	entry.SetID(model.ID)

	return nil
}
