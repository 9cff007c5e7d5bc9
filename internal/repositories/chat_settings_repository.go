package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"notesbot/internal/models"
)

type ChatSettingsRepository interface {
	Get(ctx context.Context, chatID int64) (*models.ChatSettings, error)
	UpsertNotesFolder(ctx context.Context, chatID int64, folder string) error
	UpsertAllAsTasks(ctx context.Context, chatID int64, enabled bool) error
}

type chatSettingsRepository struct {
	db *gorm.DB
}

func NewChatSettingsRepository(db *gorm.DB) ChatSettingsRepository {
	return &chatSettingsRepository{db: db}
}

// Get returns the row for chatID, or a row holding the column defaults
// when the chat has never been written.
func (r *chatSettingsRepository) Get(ctx context.Context, chatID int64) (*models.ChatSettings, error) {
	var settings models.ChatSettings
	if err := r.db.WithContext(ctx).First(&settings, "chat_id = ?", chatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.ChatSettings{ChatID: chatID}, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *chatSettingsRepository) UpsertNotesFolder(ctx context.Context, chatID int64, folder string) error {
	return r.upsert(ctx, &models.ChatSettings{ChatID: chatID, NotesFolder: folder}, "notes_folder")
}

func (r *chatSettingsRepository) UpsertAllAsTasks(ctx context.Context, chatID int64, enabled bool) error {
	return r.upsert(ctx, &models.ChatSettings{ChatID: chatID, AllAsTasks: enabled}, "all_as_tasks")
}

// upsert inserts row, or on an existing chat_id overwrites only column.
// The other column keeps its stored value.
func (r *chatSettingsRepository) upsert(ctx context.Context, row *models.ChatSettings, column string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chat_id"}},
		DoUpdates: clause.AssignmentColumns([]string{column}),
	}).Create(row).Error
}
