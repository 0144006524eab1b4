package store

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bloglyapp/blogly/models"
)

func validatePostFields(title, content string) error {
	if err := validateName("title", title); err != nil {
		return err
	}
	if content == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	return nil
}

// CreatePost inserts a post owned by the given user. The owner lookup and the
// insert share one transaction so a missing user never leaves an orphan post.
func (s *Store) CreatePost(userID uint, title, content string) (*models.Post, error) {
	title = strings.TrimSpace(title)
	if err := validatePostFields(title, content); err != nil {
		return nil, err
	}

	var post models.Post
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var owner models.User
		if err := tx.First(&owner, userID).Error; err != nil {
			return translate(err)
		}
		post = models.Post{UserID: userID, Title: title, Content: content}
		if err := tx.Create(&post).Error; err != nil {
			return translate(err)
		}
		post.User = owner
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPost loads one post with its owning user resolved.
func (s *Store) GetPost(id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.Preload("User").First(&post, id).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

// ListUserPosts returns a user's posts, newest first.
func (s *Store) ListUserPosts(userID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, translate(err)
	}
	return posts, nil
}

// UpdatePost overwrites title and content only; created_at and the owner are
// immutable.
func (s *Store) UpdatePost(id uint, title, content string) (*models.Post, error) {
	title = strings.TrimSpace(title)
	if err := validatePostFields(title, content); err != nil {
		return nil, err
	}

	var post models.Post
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("User").First(&post, id).Error; err != nil {
			return translate(err)
		}
		return translate(tx.Model(&post).Updates(map[string]interface{}{
			"title":   title,
			"content": content,
		}).Error)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes the post and its tag association rows, returning the
// deleted post so callers can still reach its owner.
func (s *Store) DeletePost(id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			return translate(err)
		}
		if err := tx.Exec("DELETE FROM post_tags WHERE post_id = ?", id).Error; err != nil {
			return translate(err)
		}
		return translate(tx.Delete(&post).Error)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}
