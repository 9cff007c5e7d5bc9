package database

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"notesbot/internal/models"
)

const (
	createChatSettingsSQL = `CREATE TABLE IF NOT EXISTS chat_settings (
		chat_id INTEGER PRIMARY KEY,
		notes_folder TEXT NOT NULL DEFAULT ''
	)`
	addAllAsTasksSQL = `ALTER TABLE chat_settings ADD COLUMN all_as_tasks INTEGER NOT NULL DEFAULT 0`
)

// Config holds DB configuration
type Config struct {
	Path     string
	LogLevel logger.LogLevel
	// Logger receives both the init status lines and gorm's SQL log.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Init opens the SQLite settings DB and brings the schema up to date.
// It is safe to call more than once against the same file.
func Init(cfg Config) (*gorm.DB, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultPath()
	}
	if cfg.LogLevel == 0 {
		cfg.LogLevel = logger.Warn
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	db, err := open(cfg)
	if err != nil {
		cfg.Logger.Error("error connecting to database", "path", cfg.Path, "err", err)
		return nil, err
	}

	if err := migrate(db); err != nil {
		cfg.Logger.Error("error creating table", "path", cfg.Path, "err", err)
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}

	cfg.Logger.Info("database initialized", "path", cfg.Path)
	return db, nil
}

func open(cfg Config) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON", cfg.Path)

	gormLogger := logger.New(
		log.New(loggerWriter{log: cfg.Logger}, "", 0),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  cfg.LogLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// One connection serializes writers inside the process and keeps
	// "database is locked" errors away.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return db, nil
}

// migrate creates chat_settings and adds the all_as_tasks column to
// tables created before the flag existed. A present column is the
// normal case on restart; any other failure is returned.
func migrate(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(createChatSettingsSQL).Error; err != nil {
			return fmt.Errorf("create chat_settings: %w", err)
		}
		if tx.Migrator().HasColumn(&models.ChatSettings{}, "all_as_tasks") {
			return nil
		}
		if err := tx.Exec(addAllAsTasksSQL).Error; err != nil {
			return fmt.Errorf("add all_as_tasks column: %w", err)
		}
		return nil
	})
}

// loggerWriter satisfies io.Writer for the GORM logger but delegates to slog
type loggerWriter struct {
	log *slog.Logger
}

func (w loggerWriter) Write(p []byte) (int, error) {
	w.log.Info(strings.TrimSpace(string(p)), "component", "gorm")
	return len(p), nil
}
