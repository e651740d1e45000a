package database

import (
	"fmt"

	"github.com/CharanV17/Medication-remainder/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Medication{},
		&models.Reminder{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
