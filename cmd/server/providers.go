package main

import (
	"context"
	"log"
	"time"

	"dealership_backend/internal/auth"
	"dealership_backend/internal/config"
	"dealership_backend/internal/platform/database"
	"dealership_backend/internal/platform/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const blocklistCleanupInterval = 10 * time.Minute

func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	appLogger, err := logger.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := appLogger.Sync(); err != nil {
			log.Printf("ERROR: Failed to sync logger during cleanup: %v", err)
		}
	}
	return appLogger, cleanup, nil
}

// provideDB opens the shared handle eagerly so a bad DSN fails at startup.
func provideDB(conn *database.Connector, logger *zap.Logger) (*gorm.DB, func(), error) {
	db, err := conn.Connect(context.Background())
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		logger.Info("Closing database connection")
		conn.Close()
	}
	return db, cleanup, nil
}

func provideBlocklist() *auth.InMemoryBlocklist {
	return auth.NewInMemoryBlocklist(blocklistCleanupInterval)
}
