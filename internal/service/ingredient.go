package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Pengu1Nus/recipe-api/internal/models"
	"github.com/Pengu1Nus/recipe-api/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngredientService handles ingredient operations, owner-scoped the same
// way as TagService.
type IngredientService struct {
	db *gorm.DB
}

// NewIngredientService creates a new IngredientService instance
func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// ListIngredients returns the owner's ingredients ordered by name
// descending. With assignedOnly only ingredients referenced by at least
// one recipe are returned, deduplicated across recipes.
func (s *IngredientService) ListIngredients(ctx context.Context, ownerID uuid.UUID, assignedOnly bool) ([]*models.Ingredient, error) {
	query := s.db.WithContext(ctx).
		Model(&models.Ingredient{}).
		Where("ingredients.user_id = ?", ownerID).
		Order("ingredients.name DESC")

	if assignedOnly {
		query = query.
			Distinct("ingredients.*").
			Joins("JOIN recipe_ingredients ON recipe_ingredients.ingredient_id = ingredients.id")
	}

	var ingredients []models.Ingredient
	if err := query.Find(&ingredients).Error; err != nil {
		return nil, err
	}

	result := make([]*models.Ingredient, len(ingredients))
	for i := range ingredients {
		result[i] = &ingredients[i]
	}
	return result, nil
}

func (s *IngredientService) getOwned(ctx context.Context, id, ownerID uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&ingredient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

// UpdateIngredient renames one of the owner's ingredients or changes its
// measurement unit.
func (s *IngredientService) UpdateIngredient(ctx context.Context, id, ownerID uuid.UUID, req *types.UpdateIngredientRequest) (*models.Ingredient, error) {
	ingredient, err := s.getOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, &ValidationError{Field: "name", Message: "must not be empty"}
		}
		var existing models.Ingredient
		err := s.db.WithContext(ctx).Where("user_id = ? AND name = ? AND id <> ?", ownerID, name, id).First(&existing).Error
		if err == nil {
			return nil, &ValidationError{Field: "name", Message: "ingredient with this name already exists"}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		updates["name"] = name
	}
	if req.MeasurementUnit != nil {
		updates["measurement_unit"] = strings.TrimSpace(*req.MeasurementUnit)
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(ingredient).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return ingredient, nil
}

// DeleteIngredient removes one of the owner's ingredients together with
// its recipe association rows.
func (s *IngredientService) DeleteIngredient(ctx context.Context, id, ownerID uuid.UUID) error {
	ingredient, err := s.getOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ingredient_id = ?", ingredient.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(ingredient).Error
	})
}
