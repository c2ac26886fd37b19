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

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe creates a recipe owned by ownerID and reconciles the
// submitted tag and ingredient descriptors inside one transaction.
// Nothing is persisted when any step fails.
func (s *RecipeService) CreateRecipe(ctx context.Context, ownerID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Message: "must not be empty"}
	}
	if req.CookingTime <= 0 {
		return nil, &ValidationError{Field: "cooking_time", Message: "must be a positive integer"}
	}

	recipe := models.Recipe{
		UserID:      ownerID,
		Title:       title,
		Description: req.Description,
		CookingTime: req.CookingTime,
		Link:        req.Link,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Ingredients").Create(&recipe).Error; err != nil {
			return err
		}
		if err := reconcileTags(tx, ownerID, &recipe, req.Tags); err != nil {
			return err
		}
		return reconcileIngredients(tx, ownerID, &recipe, req.Ingredients)
	})
	if err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, recipe.ID)
}

// GetRecipe retrieves a recipe by ID with its tags and ingredients.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe applies a partial update. Only the owner may update; the
// owner itself is immutable. A provided tag or ingredient list (even an
// empty one) replaces the current set exactly; a nil list leaves it
// untouched.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id, requesterID uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != requesterID {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, &ValidationError{Field: "title", Message: "must not be empty"}
		}
		updates["title"] = title
	}
	if req.CookingTime != nil {
		if *req.CookingTime <= 0 {
			return nil, &ValidationError{Field: "cooking_time", Message: "must be a positive integer"}
		}
		updates["cooking_time"] = *req.CookingTime
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&models.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.Tags != nil {
			if err := clearTags(tx, recipe); err != nil {
				return err
			}
			if err := reconcileTags(tx, requesterID, recipe, *req.Tags); err != nil {
				return err
			}
		}
		if req.Ingredients != nil {
			if err := clearIngredients(tx, recipe); err != nil {
				return err
			}
			if err := reconcileIngredients(tx, requesterID, recipe, *req.Ingredients); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, id)
}

// DeleteRecipe removes a recipe and its association rows. Only the owner
// may delete.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id, requesterID uuid.UUID) error {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return err
	}
	if recipe.UserID != requesterID {
		return ErrForbidden
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearTags(tx, recipe); err != nil {
			return err
		}
		if err := clearIngredients(tx, recipe); err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, "id = ?", id).Error
	})
}

// SetRecipeImage persists the uploaded image URL. Only the owner may
// attach an image.
func (s *RecipeService) SetRecipeImage(ctx context.Context, id, requesterID uuid.UUID, imageURL string) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != requesterID {
		return nil, ErrForbidden
	}

	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Update("image_url", imageURL).Error; err != nil {
		return nil, err
	}
	return s.GetRecipe(ctx, id)
}

// ListRecipes returns recipes newest first, filtered by the optional tag
// and ingredient criteria. Criteria combine with AND; a comma-separated
// id list matches with OR. Multi-join matches are deduplicated.
func (s *RecipeService) ListRecipes(ctx context.Context, filters *types.RecipeFilters) ([]*models.Recipe, error) {
	query := s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Distinct("recipes.*").
		Order("recipes.created_at DESC")

	if filters != nil && filters.Tags != "" {
		query = query.
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id")
		if ids, ok := parseIDList(filters.Tags); ok {
			query = query.Where("tags.id IN ?", ids)
		} else {
			// Fold both sides in SQL so the comparison uses one case
			// convention per backend (sqlite's LOWER is ASCII-only).
			query = query.Where("LOWER(tags.name) = LOWER(?)", filters.Tags)
		}
	}

	if filters != nil && filters.Ingredients != "" {
		query = query.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
			Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id")
		if ids, ok := parseIDList(filters.Ingredients); ok {
			query = query.Where("ingredients.id IN ?", ids)
		} else {
			query = query.Where("LOWER(ingredients.name) = LOWER(?)", filters.Ingredients)
		}
	}

	var recipes []models.Recipe
	if err := query.Preload("Tags").Preload("Ingredients.Ingredient").Find(&recipes).Error; err != nil {
		return nil, err
	}

	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// parseIDList interprets a filter value as a comma-separated uuid list.
// The second return is false when any element is not a uuid, in which
// case the value is treated as a name match instead.
func parseIDList(value string) ([]string, bool) {
	parts := strings.Split(value, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, false
		}
		ids = append(ids, id.String())
	}
	return ids, len(ids) > 0
}
