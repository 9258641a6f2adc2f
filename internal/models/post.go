package models

import (
	"time"
)

// DateLayout is how Post.Date is stored.
const DateLayout = "01/02/2006"

type Post struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Title    string    `gorm:"size:250;uniqueIndex;not null" json:"title"`
	Subtitle string    `gorm:"size:250;not null" json:"subtitle"`
	Date     string    `gorm:"size:250;not null" json:"date"`
	Body     string    `gorm:"type:text;not null" json:"body"`
	ImgURL   string    `gorm:"column:img_url;size:250;not null" json:"img_url"`
	Genre    Genre     `gorm:"size:50;not null;index" json:"genre"`
	AuthorID *uint     `gorm:"index" json:"author_id"`
	Author   *User     `json:"author,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (Post) TableName() string {
	return "blog_posts"
}

// AuthorName returns the author's display name, or "" for posts without one.
func (p Post) AuthorName() string {
	if p.Author == nil {
		return ""
	}
	return p.Author.Name
}
