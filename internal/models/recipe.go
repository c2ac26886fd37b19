package models

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Recipe struct {
	ID          uuid.UUID          `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`
	UserID      uuid.UUID          `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Title       string             `gorm:"size:255;not null" json:"title"`
	Description string             `gorm:"type:text" json:"description"`
	CookingTime int                `gorm:"not null" json:"cooking_time"`
	Link        string             `gorm:"size:255" json:"link"`
	ImageURL    string             `gorm:"size:255" json:"image_url"`
	Tags        []Tag              `gorm:"many2many:recipe_tags" json:"tags"`
	Ingredients []RecipeIngredient `json:"ingredients"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RecipeImagePath builds the storage key for an uploaded recipe image.
// The original filename only contributes its extension.
func RecipeImagePath(filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("uploads/recipe/%s%s", uuid.New().String(), ext)
}
