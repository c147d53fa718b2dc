package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fiscalis/internal/domain/business"
	"fiscalis/internal/infrastructure/persistence/mappers"
	"fiscalis/internal/infrastructure/persistence/models"
	"fiscalis/internal/shared/db"
	"fiscalis/internal/shared/errors"
)

type BusinessProfileRepository struct {
	db *gorm.DB
}

func NewBusinessProfileRepository(db *gorm.DB) *BusinessProfileRepository {
	return &BusinessProfileRepository{db: db}
}

func (r *BusinessProfileRepository) GetByID(ctx context.Context, id uint) (*business.Profile, error) {
	var model models.BusinessProfileModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("business profile not found")
		}
		return nil, fmt.Errorf("failed to get business profile: %w", err)
	}

	return mappers.BusinessProfileToDomain(&model)
}

func (r *BusinessProfileRepository) ListActive(ctx context.Context) ([]*business.Profile, error) {
	var profileModels []models.BusinessProfileModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("active = ?", true).
		Order("id ASC").
		Find(&profileModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list active businesses: %w", err)
	}

	profiles := make([]*business.Profile, 0, len(profileModels))
	for i := range profileModels {
		profile, err := mappers.BusinessProfileToDomain(&profileModels[i])
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}
