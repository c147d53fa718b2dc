package models

import "time"

type CalendarEntryModel struct {
	ID            uint   `gorm:"primaryKey"`
	Category      string `gorm:"size:100;not null;index"`
	Subcategory   string `gorm:"size:100"`
	Tag           string `gorm:"size:50;not null;index"`
	Kind          string `gorm:"size:100"`
	Frequency     string `gorm:"size:20;not null"`
	AnchorDay     int    `gorm:"not null;default:0"`
	AnchorMonth   int    `gorm:"not null;default:0"`
	Detail        string `gorm:"type:text"`
	Comment       string `gorm:"type:text"`
	FormReference string `gorm:"size:100"`
	Link          string `gorm:"size:512"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (CalendarEntryModel) TableName() string {
	return "calendar_entries"
}
