package service

import (
	"context"

	"github.com/Pengu1Nus/recipe-api/internal/models"
	"github.com/Pengu1Nus/recipe-api/internal/types"
	"github.com/google/uuid"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, username, name, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error)
	Logout(ctx context.Context, token string) error
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, req *types.UpdateUserRequest) (*models.User, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, ownerID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id, requesterID uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id, requesterID uuid.UUID) error
	ListRecipes(ctx context.Context, filters *types.RecipeFilters) ([]*models.Recipe, error)
	SetRecipeImage(ctx context.Context, id, requesterID uuid.UUID, imageURL string) (*models.Recipe, error)
}

// ITagService defines the interface for tag operations
type ITagService interface {
	ListTags(ctx context.Context, ownerID uuid.UUID, assignedOnly bool) ([]*models.Tag, error)
	UpdateTag(ctx context.Context, id, ownerID uuid.UUID, name string) (*models.Tag, error)
	DeleteTag(ctx context.Context, id, ownerID uuid.UUID) error
}

// IIngredientService defines the interface for ingredient operations
type IIngredientService interface {
	ListIngredients(ctx context.Context, ownerID uuid.UUID, assignedOnly bool) ([]*models.Ingredient, error)
	UpdateIngredient(ctx context.Context, id, ownerID uuid.UUID, req *types.UpdateIngredientRequest) (*models.Ingredient, error)
	DeleteIngredient(ctx context.Context, id, ownerID uuid.UUID) error
}

// IImageService defines the interface for image storage operations
type IImageService interface {
	UploadRecipeImage(ctx context.Context, data []byte, filename string) (string, error)
}
