package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the tables for models.
func AutoMigrate(db *gorm.DB, logger *zap.Logger, models ...interface{}) error {
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("auto-migrate %T: %w", model, err)
		}
	}
	logger.Info("Database schema is up to date", zap.Int("models", len(models)))
	return nil
}
