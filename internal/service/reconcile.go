package service

import (
	"strings"

	"github.com/Pengu1Nus/recipe-api/internal/models"
	"github.com/Pengu1Nus/recipe-api/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// findOrCreateTag resolves a descriptor to the owner's tag row, creating
// it if absent. The insert is a single ON CONFLICT DO NOTHING keyed on
// (user_id, name), so two concurrent requests cannot both insert.
func findOrCreateTag(tx *gorm.DB, ownerID uuid.UUID, name string) (*models.Tag, error) {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
		DoNothing: true,
	}).Create(&models.Tag{UserID: ownerID, Name: name}).Error
	if err != nil {
		return nil, err
	}
	// The insert may have lost to an existing row. Refetch into a fresh
	// struct: gorm folds a non-zero primary key on the destination into
	// the WHERE clause, and the skipped insert leaves one behind.
	var tag models.Tag
	if err := tx.Where("user_id = ? AND name = ?", ownerID, name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func findOrCreateIngredient(tx *gorm.DB, ownerID uuid.UUID, name, unit string) (*models.Ingredient, error) {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
		DoNothing: true,
	}).Create(&models.Ingredient{UserID: ownerID, Name: name, MeasurementUnit: unit}).Error
	if err != nil {
		return nil, err
	}
	var ingredient models.Ingredient
	if err := tx.Where("user_id = ? AND name = ?", ownerID, name).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// reconcileTags attaches an owner-scoped tag row for every descriptor to
// the recipe. Tags already attached stay attached; callers implementing
// exact-match update semantics clear the set first.
func reconcileTags(tx *gorm.DB, ownerID uuid.UUID, recipe *models.Recipe, descriptors []types.TagDescriptor) error {
	for _, d := range descriptors {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			return &ValidationError{Field: "tags", Message: "tag name must not be empty"}
		}
		tag, err := findOrCreateTag(tx, ownerID, name)
		if err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("Tags").Append(tag); err != nil {
			return err
		}
	}
	return nil
}

// reconcileIngredients resolves each descriptor to an owner-scoped
// ingredient row and creates the association row carrying the amount.
func reconcileIngredients(tx *gorm.DB, ownerID uuid.UUID, recipe *models.Recipe, descriptors []types.IngredientDescriptor) error {
	for _, d := range descriptors {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			return &ValidationError{Field: "ingredients", Message: "ingredient name must not be empty"}
		}
		if d.Amount < 1 {
			return &ValidationError{Field: "ingredients", Message: "amount must be at least 1"}
		}
		ingredient, err := findOrCreateIngredient(tx, ownerID, name, strings.TrimSpace(d.MeasurementUnit))
		if err != nil {
			return err
		}
		link := models.RecipeIngredient{
			RecipeID:     recipe.ID,
			IngredientID: ingredient.ID,
			Amount:       d.Amount,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// clearTags detaches all tags from the recipe. The tag rows themselves
// survive; they remain listed under the owner.
func clearTags(tx *gorm.DB, recipe *models.Recipe) error {
	return tx.Model(recipe).Association("Tags").Clear()
}

// clearIngredients removes the recipe's association rows.
func clearIngredients(tx *gorm.DB, recipe *models.Recipe) error {
	return tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error
}
