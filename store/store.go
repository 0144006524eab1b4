package store

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound reports that no entity exists for the given id.
	ErrNotFound = errors.New("record not found")
	// ErrValidation reports a missing or out-of-bounds required field.
	ErrValidation = errors.New("invalid input")
	// ErrDuplicate reports a uniqueness violation, e.g. a reused tag name.
	ErrDuplicate = errors.New("duplicate value")
)

// Bounded text columns (first/last name, title, tag name) share one limit.
const maxTextLen = 25

// Store implements all entity operations over one gorm handle. Multi-step
// mutations run inside a transaction so a failure leaves no partial write.
type Store struct {
	db *gorm.DB
}

// New creates a Store bound to the given database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}
