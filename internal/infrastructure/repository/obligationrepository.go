package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fiscalis/internal/domain/obligation"
	"fiscalis/internal/infrastructure/persistence/mappers"
	"fiscalis/internal/infrastructure/persistence/models"
	"fiscalis/internal/shared/biztime"
	"fiscalis/internal/shared/db"
)

type ObligationRepository struct {
	db *gorm.DB
}

func NewObligationRepository(db *gorm.DB) *ObligationRepository {
	return &ObligationRepository{db: db}
}

// CreateBatch persists all drafts in one insert. Callers wrap it in a
// transaction so one business's obligations commit together.
func (r *ObligationRepository) CreateBatch(ctx context.Context, obligations []*obligation.Obligation) error {
	if len(obligations) == 0 {
		return nil
	}

	obligationModels := make([]*models.ObligationModel, 0, len(obligations))
	for _, o := range obligations {
		obligationModels = append(obligationModels, mappers.ObligationToModel(o))
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(&obligationModels).Error; err != nil {
		return fmt.Errorf("failed to create obligations: %w", err)
	}

	// Write back the auto-generated IDs to the domain objects
	for i, o := range obligations {
		o.SetID(obligationModels[i].ID)
	}

	return nil
}

func (r *ObligationRepository) CountGenerated(ctx context.Context, businessID uint, tag string, dueDate time.Time, period string) (int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.ObligationModel{}).
		Where("generated_from_calendar = ?", true).
		Where("business_id = ?", businessID).
		Where("tag = ?", tag).
		Where("due_date = ?", biztime.DateOnly(dueDate))

	if period != "" {
		query = query.Where("period = ?", period)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count generated obligations: %w", err)
	}

	return count, nil
}

func (r *ObligationRepository) DeleteGenerated(ctx context.Context) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("generated_from_calendar = ?", true).
		Delete(&models.ObligationModel{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete generated obligations: %w", result.Error)
	}

	return result.RowsAffected, nil
}
