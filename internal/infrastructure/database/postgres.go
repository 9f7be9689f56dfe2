package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/trackmyhomeschool/homeschool/internal/infrastructure/repositories"
)

// Open creates a new database connection.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates or updates all tables and seeds the read-only
// state-requirements reference table.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&repositories.DBUser{},
		&repositories.DBStateRequirement{},
		&repositories.DBStudent{},
		&repositories.DBDailyLog{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	if err := repositories.SeedStates(db); err != nil {
		return fmt.Errorf("failed to seed state requirements: %w", err)
	}

	return nil
}
