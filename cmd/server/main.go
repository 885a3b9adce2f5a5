// Package main implements the entry point for the Mesto API server,
// a photo-sharing backend with user profiles, photo cards, and likes.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/phrazzld/mesto-api/internal/config"
	"github.com/phrazzld/mesto-api/internal/platform/logger"
	"github.com/phrazzld/mesto-api/internal/platform/mongodb"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// run loads configuration, sets up logging and the database connection,
// assembles the application, and serves HTTP until shutdown.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	ctx := context.Background()
	db, disconnect, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := disconnect(context.Background()); err != nil {
			appLogger.Error("failed to disconnect from MongoDB", "error", err)
		}
	}()

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		return err
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
