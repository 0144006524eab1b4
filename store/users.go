package store

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bloglyapp/blogly/models"
)

func validateName(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	if len(value) > maxTextLen {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrValidation, field, maxTextLen)
	}
	return nil
}

// CreateUser inserts a new user. An empty image URL is replaced with the
// fixed placeholder.
func (s *Store) CreateUser(firstName, lastName, imageURL string) (*models.User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if err := validateName("first name", firstName); err != nil {
		return nil, err
	}
	if err := validateName("last name", lastName); err != nil {
		return nil, err
	}
	if strings.TrimSpace(imageURL) == "" {
		imageURL = models.DefaultImageURL
	}

	user := models.User{FirstName: firstName, LastName: lastName, ImageURL: imageURL}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetUser loads one user by id.
func (s *Store) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// ListUsers returns all users ascending by first name.
func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("first_name asc").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

// UpdateUser overwrites the three mutable fields. Unlike CreateUser the image
// URL is written as submitted, so it may be cleared.
func (s *Store) UpdateUser(id uint, firstName, lastName, imageURL string) (*models.User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if err := validateName("first name", firstName); err != nil {
		return nil, err
	}
	if err := validateName("last name", lastName); err != nil {
		return nil, err
	}

	var user models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return translate(err)
		}
		return translate(tx.Model(&user).Updates(map[string]interface{}{
			"first_name": firstName,
			"last_name":  lastName,
			"image_url":  imageURL,
		}).Error)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the user together with every post it owns and those
// posts' tag associations, atomically.
func (s *Store) DeleteUser(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return translate(err)
		}

		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("user_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return translate(err)
		}
		if len(postIDs) > 0 {
			if err := tx.Exec("DELETE FROM post_tags WHERE post_id IN ?", postIDs).Error; err != nil {
				return translate(err)
			}
			if err := tx.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
				return translate(err)
			}
		}

		return translate(tx.Delete(&user).Error)
	})
}
