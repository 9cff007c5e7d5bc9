package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"notesbot/internal/config"
	"notesbot/internal/database"
	"notesbot/internal/logging"
	"notesbot/internal/services"
)

// App holds the wired settings store for one command invocation.
type App struct {
	ctx          context.Context
	cfg          config.Config
	log          *slog.Logger
	ChatSettings services.ChatSettingsService
	dbClose      func() error
	logClose     io.Closer
}

// NewApp creates a new App application struct
func NewApp(cfg config.Config) *App {
	return &App{cfg: cfg}
}

// startup opens the log sink and the database, then wires the services.
func (a *App) startup(ctx context.Context) error {
	a.ctx = ctx

	log, closer, err := logging.New(a.cfg.Logging())
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	a.log = log
	a.logClose = closer

	sqlLevel, err := a.cfg.GormLogLevel()
	if err != nil {
		return err
	}

	db, err := database.Init(database.Config{
		Path:     a.cfg.DBPath,
		LogLevel: sqlLevel,
		Logger:   log,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	svc := services.NewDbServices(db, log)
	a.ChatSettings = svc.ChatSettings

	// Capture DB close for shutdown
	if sqlDB, err := db.DB(); err != nil {
		a.log.Error("failed to get sql.DB", "err", err)
	} else {
		a.dbClose = sqlDB.Close
	}
	return nil
}

// shutdown releases the database and the log file.
func (a *App) shutdown() {
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			a.log.Error("failed to close database", "err", err)
		}
		a.dbClose = nil
	}
	if a.logClose != nil {
		_ = a.logClose.Close()
		a.logClose = nil
	}
}
