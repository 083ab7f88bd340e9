package model

import (
	"time"
)

// Comment stores a visitor comment. A comment belongs to exactly one of an
// article or a media record; the service layer enforces the exactly-one
// rule, the schema only keeps both keys nullable.
type Comment struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	ArticleID *string   `gorm:"column:article_id;type:varchar(36);index:idx_comment_article" json:"article_id,omitempty"`
	MediaID   *string   `gorm:"column:media_id;type:varchar(36);index:idx_comment_media" json:"media_id,omitempty"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Email     string    `gorm:"column:email" json:"email,omitempty"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	Approved  bool      `gorm:"column:approved;default:false" json:"approved"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides gorm to use the comments table.
func (Comment) TableName() string {
	return "comments"
}
