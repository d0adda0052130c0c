package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"todo/internal/config"
	"todo/internal/menu"
	"todo/internal/store"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "todo",
		Level:  log.WarnLevel,
	})

	// Configuration
	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		logger.Fatal("Failed to load config", "err", err)
	}
	logger.SetLevel(cfg.Level())

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		logger.Fatal("Failed to create data directory", "err", err)
	}

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Fatal("Session aborted", "err", err)
	}
}

// run owns the store for the lifetime of the session.
func run(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	s, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.EnsureSchema(ctx, cfg.ListName); err != nil {
		return err
	}
	logger.Debug("store ready", "db", cfg.DBPath, "list", cfg.ListName)

	m := menu.New(s, os.Stdin, os.Stdout, menu.Options{
		ListName:  cfg.ListName,
		ExitDelay: cfg.ExitDelay,
		Logger:    logger,
	})
	return m.Run(ctx)
}
