package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/cooklyapp/backend/internal/models"
)

// Migrate brings the schema up to date. On Postgres the pgvector
// extension must exist before the recipes table is created.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
			return fmt.Errorf("failed to create vector extension: %w", err)
		}
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Recipe{},
		&models.Comment{},
	)
}
