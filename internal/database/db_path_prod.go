//go:build prod

package database

import (
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultPath returns the database path for production mode.
// In production, the settings file is stored in the user's config directory.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		slog.Warn("failed to get user config dir, using fallback", "err", err)
		return "bot_settings.db"
	}

	appDir := filepath.Join(configDir, "notesbot")
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		slog.Warn("failed to create app config dir, using fallback", "dir", appDir, "err", err)
		return "bot_settings.db"
	}

	return filepath.Join(appDir, "bot_settings.db")
}
