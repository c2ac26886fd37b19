package types

// TagDescriptor is a client-submitted tag not yet resolved to a stored row.
type TagDescriptor struct {
	Name string `json:"name" binding:"required"`
}

// IngredientDescriptor is a client-submitted ingredient with its amount.
type IngredientDescriptor struct {
	Name            string `json:"name" binding:"required"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount" binding:"required,min=1"`
}

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	Title       string                 `json:"title" binding:"required"`
	Description string                 `json:"description"`
	CookingTime int                    `json:"cooking_time" binding:"required,gt=0"`
	Link        string                 `json:"link"`
	Tags        []TagDescriptor        `json:"tags"`
	Ingredients []IngredientDescriptor `json:"ingredients"`
}

// UpdateRecipeRequest represents the request body for updating a recipe.
// Nil fields are left untouched; a present-but-empty tag or ingredient
// list clears the corresponding set. The owner is not part of the request
// and therefore cannot be reassigned.
type UpdateRecipeRequest struct {
	Title       *string                 `json:"title"`
	Description *string                 `json:"description"`
	CookingTime *int                    `json:"cooking_time"`
	Link        *string                 `json:"link"`
	Tags        *[]TagDescriptor        `json:"tags"`
	Ingredients *[]IngredientDescriptor `json:"ingredients"`
}

// RecipeFilters carries the query-string filter criteria for recipe
// listing. Each value is either a name (case-insensitive exact match) or
// a comma-separated list of ids.
type RecipeFilters struct {
	Tags        string `form:"tags"`
	Ingredients string `form:"ingredients"`
}

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required,min=5"`
}

// TokenRequest represents the request body for obtaining a token
type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest represents a partial update of the caller's account.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// UpdateTagRequest renames a tag.
type UpdateTagRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateIngredientRequest renames an ingredient or changes its unit.
type UpdateIngredientRequest struct {
	Name            *string `json:"name"`
	MeasurementUnit *string `json:"measurement_unit"`
}
