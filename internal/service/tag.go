package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Pengu1Nus/recipe-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TagService handles tag operations. Every query is scoped to the owner;
// another user's tags are simply not visible.
type TagService struct {
	db *gorm.DB
}

// NewTagService creates a new TagService instance
func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

// ListTags returns the owner's tags ordered by name descending. With
// assignedOnly only tags attached to at least one recipe are returned,
// each at most once.
func (s *TagService) ListTags(ctx context.Context, ownerID uuid.UUID, assignedOnly bool) ([]*models.Tag, error) {
	query := s.db.WithContext(ctx).
		Model(&models.Tag{}).
		Where("tags.user_id = ?", ownerID).
		Order("tags.name DESC")

	if assignedOnly {
		query = query.
			Distinct("tags.*").
			Joins("JOIN recipe_tags ON recipe_tags.tag_id = tags.id")
	}

	var tags []models.Tag
	if err := query.Find(&tags).Error; err != nil {
		return nil, err
	}

	result := make([]*models.Tag, len(tags))
	for i := range tags {
		result[i] = &tags[i]
	}
	return result, nil
}

func (s *TagService) getOwned(ctx context.Context, id, ownerID uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// UpdateTag renames one of the owner's tags.
func (s *TagService) UpdateTag(ctx context.Context, id, ownerID uuid.UUID, name string) (*models.Tag, error) {
	tag, err := s.getOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "must not be empty"}
	}

	var existing models.Tag
	err = s.db.WithContext(ctx).Where("user_id = ? AND name = ? AND id <> ?", ownerID, name, id).First(&existing).Error
	if err == nil {
		return nil, &ValidationError{Field: "name", Message: "tag with this name already exists"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(tag).Update("name", name).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

// DeleteTag removes one of the owner's tags and detaches it from any
// recipes referencing it.
func (s *TagService) DeleteTag(ctx context.Context, id, ownerID uuid.UUID) error {
	tag, err := s.getOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM recipe_tags WHERE tag_id = ?", tag.ID).Error; err != nil {
			return err
		}
		return tx.Delete(tag).Error
	})
}
