package database

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"notesbot/internal/models"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Path:     filepath.Join(t.TempDir(), "bot_settings.db"),
		LogLevel: logger.Silent,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func closeDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestInit_CreatesSchema(t *testing.T) {
	db, err := Init(testConfig(t))
	require.NoError(t, err)
	defer closeDB(t, db)

	m := db.Migrator()
	assert.True(t, m.HasTable(&models.ChatSettings{}))
	for _, col := range []string{"chat_id", "notes_folder", "all_as_tasks"} {
		assert.True(t, m.HasColumn(&models.ChatSettings{}, col), col)
	}
}

func TestInit_Repeatable(t *testing.T) {
	cfg := testConfig(t)

	db, err := Init(cfg)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.ChatSettings{ChatID: 42, NotesFolder: "/notes", AllAsTasks: true}).Error)
	closeDB(t, db)

	for i := 0; i < 3; i++ {
		db, err = Init(cfg)
		require.NoError(t, err)
		closeDB(t, db)
	}

	db, err = Init(cfg)
	require.NoError(t, err)
	defer closeDB(t, db)

	var rows []models.ChatSettings
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, models.ChatSettings{ChatID: 42, NotesFolder: "/notes", AllAsTasks: true}, rows[0])
}

func TestInit_MigratesLegacyTable(t *testing.T) {
	cfg := testConfig(t)

	legacy, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, legacy.Exec(`CREATE TABLE chat_settings (chat_id INTEGER PRIMARY KEY, notes_folder TEXT NOT NULL)`).Error)
	require.NoError(t, legacy.Exec(`INSERT INTO chat_settings (chat_id, notes_folder) VALUES (?, ?)`, 7, "/legacy").Error)
	closeDB(t, legacy)

	db, err := Init(cfg)
	require.NoError(t, err)
	defer closeDB(t, db)

	assert.True(t, db.Migrator().HasColumn(&models.ChatSettings{}, "all_as_tasks"))

	var row models.ChatSettings
	require.NoError(t, db.First(&row, "chat_id = ?", 7).Error)
	assert.Equal(t, "/legacy", row.NotesFolder)
	assert.False(t, row.AllAsTasks)
}

func TestInit_CorruptFileIsReported(t *testing.T) {
	cfg := testConfig(t)
	garbage := make([]byte, 4096)
	for i := range garbage {
		garbage[i] = 'x'
	}
	require.NoError(t, os.WriteFile(cfg.Path, garbage, 0o600))

	db, err := Init(cfg)
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestInit_CreatesParentDirectory(t *testing.T) {
	cfg := testConfig(t)
	cfg.Path = filepath.Join(t.TempDir(), "nested", "data", "bot_settings.db")

	db, err := Init(cfg)
	require.NoError(t, err)
	defer closeDB(t, db)

	_, err = os.Stat(cfg.Path)
	assert.NoError(t, err)
}
