package database

import (
	"gorm.io/gorm"

	"github.com/Pengu1Nus/recipe-api/internal/models"
)

// RunMigrations brings the schema up to date for all entities, including
// the composite unique indexes the reconciler's upserts depend on.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
	)
}
