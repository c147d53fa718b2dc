package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fiscalis/internal/domain/calendar"
	"fiscalis/internal/infrastructure/persistence/mappers"
	"fiscalis/internal/infrastructure/persistence/models"
	"fiscalis/internal/shared/db"
	"fiscalis/internal/shared/logger"
)

type CalendarEntryRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCalendarEntryRepository(db *gorm.DB, logger logger.Interface) *CalendarEntryRepository {
	return &CalendarEntryRepository{db: db, logger: logger}
}

func (r *CalendarEntryRepository) ListAll(ctx context.Context) ([]*calendar.Entry, error) {
	var entryModels []models.CalendarEntryModel

	if err := db.GetTxFromContext(ctx, r.db).
		Order("id ASC").
		Find(&entryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list calendar entries: %w", err)
	}

	entries := make([]*calendar.Entry, 0, len(entryModels))
	for i := range entryModels {
		entry, err := mappers.CalendarEntryToDomain(&entryModels[i])
		if err != nil {
			// A corrupt catalog row should not blank out the whole catalog.
			r.logger.Warnw("skipping unreadable calendar entry",
				"calendar_entry_id", entryModels[i].ID, "error", err)
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
