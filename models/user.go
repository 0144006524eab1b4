package models

// DefaultImageURL is stored for users created without a profile image.
const DefaultImageURL = "https://www.thetimes.co.uk/imageserver/image/%2Fmethode%2Ftimes%2Fprodmigration%2Fweb%2Fbin%2F5ca5cbde-984c-328c-97f5-3805b28ebb87.jpg?crop=1500%2C1000%2C0%2C0"

// User represents a blog author.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:25;not null" json:"first_name"`
	LastName  string `gorm:"size:25;not null" json:"last_name"`
	ImageURL  string `gorm:"type:text;not null" json:"image_url"`
	Posts     []Post `json:"-"`
}

// FullName joins the two name fields for display.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
