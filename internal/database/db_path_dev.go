//go:build !prod

package database

// DefaultPath returns the database path for development mode.
// The settings file sits in the working directory next to the bot log.
func DefaultPath() string {
	return "bot_settings.db"
}
