package services

import (
	"log/slog"

	"notesbot/internal/repositories"

	"gorm.io/gorm"
)

// DbServices aggregates all domain services backed by the database.
// Fields use plural names to align with Go conventions seen in
// service/store containers.
type DbServices struct {
	ChatSettings ChatSettingsService
}

// NewDbServices constructs the service container using repositories backed by db.
func NewDbServices(db *gorm.DB, log *slog.Logger) *DbServices {
	chatSettingsRepo := repositories.NewChatSettingsRepository(db)

	return &DbServices{
		ChatSettings: NewChatSettingsService(chatSettingsRepo, log),
	}
}
