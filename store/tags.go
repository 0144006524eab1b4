package store

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bloglyapp/blogly/models"
)

// CreateTag inserts a tag with a unique name. The uniqueness check and the
// insert share one transaction.
func (s *Store) CreateTag(name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if err := validateName("name", name); err != nil {
		return nil, err
	}

	var tag models.Tag
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Tag{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return translate(err)
		}
		if count > 0 {
			return fmt.Errorf("%w: a tag named %q already exists", ErrDuplicate, name)
		}
		tag = models.Tag{Name: name}
		return translate(tx.Create(&tag).Error)
	})
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetTag loads one tag by id.
func (s *Store) GetTag(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		return nil, translate(err)
	}
	return &tag, nil
}

// ListTags returns all tags ascending by name.
func (s *Store) ListTags() ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.Order("name asc").Find(&tags).Error; err != nil {
		return nil, translate(err)
	}
	return tags, nil
}

// DeleteTag removes the tag and its association rows.
func (s *Store) DeleteTag(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var tag models.Tag
		if err := tx.First(&tag, id).Error; err != nil {
			return translate(err)
		}
		if err := tx.Exec("DELETE FROM post_tags WHERE tag_id = ?", id).Error; err != nil {
			return translate(err)
		}
		return translate(tx.Delete(&tag).Error)
	})
}
