package models

import (
	"time"

	"gorm.io/datatypes"
)

// ObligationModel carries the generation marker and the originating calendar
// entry as dedicated columns, mirrored from the metadata blob, so duplicate
// checks and purges stay on indexed columns. The composite index on
// (business_id, tag, due_date) backs the duplicate guard's lookup and serves
// as the reconciliation key should racing runs ever insert twins.
type ObligationModel struct {
	ID                    uint      `gorm:"primaryKey"`
	UUID                  string    `gorm:"size:36;uniqueIndex;not null"`
	BusinessID            uint      `gorm:"not null;index:idx_obligations_dedup,priority:1"`
	Title                 string    `gorm:"size:255;not null"`
	Description           string    `gorm:"type:text"`
	Tag                   string    `gorm:"size:50;not null;index:idx_obligations_dedup,priority:2"`
	DueDate               time.Time `gorm:"type:date;not null;index:idx_obligations_dedup,priority:3"`
	Status                string    `gorm:"size:20;not null;index"`
	Priority              string    `gorm:"size:20;not null"`
	Period                string    `gorm:"size:50"`
	Link                  string    `gorm:"size:512"`
	GeneratedFromCalendar bool      `gorm:"not null;default:false;index"`
	CalendarEntryID       *uint     `gorm:"index"`
	Metadata              datatypes.JSONMap
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (ObligationModel) TableName() string {
	return "obligations"
}
