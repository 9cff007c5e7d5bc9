package mocks

import (
	"context"

	"notesbot/internal/models"
)

type ChatSettingsRepositoryMock struct {
	GetFunc               func(ctx context.Context, chatID int64) (*models.ChatSettings, error)
	UpsertNotesFolderFunc func(ctx context.Context, chatID int64, folder string) error
	UpsertAllAsTasksFunc  func(ctx context.Context, chatID int64, enabled bool) error
}

func (m *ChatSettingsRepositoryMock) Get(ctx context.Context, chatID int64) (*models.ChatSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, chatID)
	}
	return &models.ChatSettings{ChatID: chatID}, nil
}

func (m *ChatSettingsRepositoryMock) UpsertNotesFolder(ctx context.Context, chatID int64, folder string) error {
	if m.UpsertNotesFolderFunc != nil {
		return m.UpsertNotesFolderFunc(ctx, chatID, folder)
	}
	return nil
}

func (m *ChatSettingsRepositoryMock) UpsertAllAsTasks(ctx context.Context, chatID int64, enabled bool) error {
	if m.UpsertAllAsTasksFunc != nil {
		return m.UpsertAllAsTasksFunc(ctx, chatID, enabled)
	}
	return nil
}
