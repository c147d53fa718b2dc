package models

import "time"

type BusinessProfileModel struct {
	ID                uint   `gorm:"primaryKey"`
	Name              string `gorm:"size:255;not null"`
	Category          string `gorm:"size:100;not null;index"`
	Subcategory       string `gorm:"size:100"`
	SubjectToVAT      bool   `gorm:"not null;default:false"`
	VATRegime         string `gorm:"size:20"`
	ProratedDeduction bool   `gorm:"not null;default:false"`
	Active            bool   `gorm:"not null;default:true;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (BusinessProfileModel) TableName() string {
	return "business_profiles"
}
