package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"notesbot/internal/models"
	"notesbot/internal/repositories"
)

// ErrStorage wraps every failure coming from the settings store.
var ErrStorage = errors.New("settings storage failure")

// ChatSettingsService is the per-chat settings API used by the bot.
//
// Setters always return a human-readable status line. On failure the line
// starts with "Error" and the returned error wraps ErrStorage. Getters
// return the column default for chats that were never written; a non-nil
// error separates a storage failure from a missing row.
type ChatSettingsService interface {
	SetNotesFolder(ctx context.Context, chatID int64, folder string) (string, error)
	NotesFolder(ctx context.Context, chatID int64) (string, error)
	SetAllAsTasks(ctx context.Context, chatID int64, enabled bool) (string, error)
	AllAsTasks(ctx context.Context, chatID int64) (bool, error)
	Get(ctx context.Context, chatID int64) (*models.ChatSettings, error)
}

type chatSettingsService struct {
	settings repositories.ChatSettingsRepository
	log      *slog.Logger
}

func NewChatSettingsService(settings repositories.ChatSettingsRepository, log *slog.Logger) ChatSettingsService {
	if log == nil {
		log = slog.Default()
	}
	return &chatSettingsService{settings: settings, log: log}
}

func (s *chatSettingsService) SetNotesFolder(ctx context.Context, chatID int64, folder string) (string, error) {
	if err := s.settings.UpsertNotesFolder(ctx, chatID, folder); err != nil {
		msg := fmt.Sprintf("Error saving settings for %d: %v", chatID, err)
		s.log.Error(msg, "chat_id", chatID)
		return msg, fmt.Errorf("%w: set notes folder: %w", ErrStorage, err)
	}

	msg := fmt.Sprintf("Notes folder for %d set to: %s", chatID, folder)
	s.log.Info(msg, "chat_id", chatID)
	return msg, nil
}

func (s *chatSettingsService) NotesFolder(ctx context.Context, chatID int64) (string, error) {
	settings, err := s.get(ctx, chatID)
	if err != nil {
		return "", err
	}
	return settings.NotesFolder, nil
}

func (s *chatSettingsService) SetAllAsTasks(ctx context.Context, chatID int64, enabled bool) (string, error) {
	if err := s.settings.UpsertAllAsTasks(ctx, chatID, enabled); err != nil {
		msg := fmt.Sprintf("Error saving all_as_tasks for %d: %v", chatID, err)
		s.log.Error(msg, "chat_id", chatID)
		return msg, fmt.Errorf("%w: set all_as_tasks: %w", ErrStorage, err)
	}

	msg := fmt.Sprintf("All posts as tasks for %d: %s", chatID, onOff(enabled))
	s.log.Info(msg, "chat_id", chatID)
	return msg, nil
}

func (s *chatSettingsService) AllAsTasks(ctx context.Context, chatID int64) (bool, error) {
	settings, err := s.get(ctx, chatID)
	if err != nil {
		return false, err
	}
	return settings.AllAsTasks, nil
}

func (s *chatSettingsService) Get(ctx context.Context, chatID int64) (*models.ChatSettings, error) {
	return s.get(ctx, chatID)
}

func (s *chatSettingsService) get(ctx context.Context, chatID int64) (*models.ChatSettings, error) {
	settings, err := s.settings.Get(ctx, chatID)
	if err != nil {
		s.log.Error("database error", "chat_id", chatID, "err", err)
		return nil, fmt.Errorf("%w: read chat %d: %w", ErrStorage, chatID, err)
	}
	return settings, nil
}

func onOff(enabled bool) string {
	if enabled {
		return "ON"
	}
	return "OFF"
}
