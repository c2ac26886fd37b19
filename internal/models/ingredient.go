package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is owned by a single user, same natural key as Tag.
type Ingredient struct {
	ID              uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	UserID          uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_ingredients_user_name" json:"user_id"`
	Name            string    `gorm:"size:255;not null;uniqueIndex:idx_ingredients_user_name" json:"name"`
	MeasurementUnit string    `gorm:"size:64" json:"measurement_unit"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// RecipeIngredient links a recipe to an ingredient and carries the
// amount, so it is a real entity rather than a bare join table.
type RecipeIngredient struct {
	ID           uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"-"`
	RecipeID     uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"-"`
	IngredientID uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"-"`
	Ingredient   Ingredient `json:"ingredient"`
	Amount       int        `gorm:"not null" json:"amount"`
}

func (ri *RecipeIngredient) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}
