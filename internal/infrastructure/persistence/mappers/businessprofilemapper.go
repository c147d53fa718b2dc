package mappers

import (
	"fmt"

	"fiscalis/internal/domain/business"
	vo "fiscalis/internal/domain/business/valueobjects"
	"fiscalis/internal/infrastructure/persistence/models"
)

func BusinessProfileToModel(p *business.Profile) *models.BusinessProfileModel {
	return &models.BusinessProfileModel{
		ID:                p.ID(),
		Name:              p.Name(),
		Category:          p.Category(),
		Subcategory:       p.Subcategory(),
		SubjectToVAT:      p.SubjectToVAT(),
		VATRegime:         p.VATRegime().String(),
		ProratedDeduction: p.ProratedDeduction(),
		Active:            p.Active(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
}

func BusinessProfileToDomain(model *models.BusinessProfileModel) (*business.Profile, error) {
	regime, err := vo.NewVATRegime(model.VATRegime)
	if err != nil {
		return nil, fmt.Errorf("invalid VAT regime: %w", err)
	}

	profile, err := business.ReconstructProfile(
		model.ID,
		model.Name,
		model.Category,
		model.Subcategory,
		model.SubjectToVAT,
		regime,
		model.ProratedDeduction,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct business profile: %w", err)
	}

	return profile, nil
}
