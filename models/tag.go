package models

// Tag is a label that may be attached to any number of posts. Names are
// unique across all tags.
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:25;not null;uniqueIndex" json:"name"`
	Posts []Post `gorm:"many2many:post_tags;" json:"-"`
}
