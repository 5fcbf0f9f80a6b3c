package database

import (
	"gorm.io/gorm"

	"github.com/dishcovery/dishcovery/backend/internal/models"
)

// Migrate brings the schema up to date. Two tables, so GORM
// auto-migration covers both dialects.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
	)
}
