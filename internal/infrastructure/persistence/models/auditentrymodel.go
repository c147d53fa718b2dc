package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditEntryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Kind      string `gorm:"size:100;not null;index"`
	Actor     string `gorm:"size:100;not null;index"`
	Payload   datatypes.JSONMap
	CreatedAt time.Time `gorm:"index"`
}

func (AuditEntryModel) TableName() string {
	return "audit_entries"
}
