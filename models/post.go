package models

import (
	"html/template"
	"time"
)

// Post represents a blog entry owned by exactly one user. Ownership is set at
// creation and never reassigned; CreatedAt is set once and immutable.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Title     string    `gorm:"size:25;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	Tags      []Tag     `gorm:"many2many:post_tags;" json:"tags"`
}

// HTMLContent marks the stored content as safe for direct rendering. Content
// is sanitized before it is written, never at display time.
func (p Post) HTMLContent() template.HTML {
	return template.HTML(p.Content)
}

// FriendlyDate renders CreatedAt the way the post pages display it.
func (p Post) FriendlyDate() string {
	return p.CreatedAt.Format("Mon Jan 2 2006, 3:04 PM")
}
