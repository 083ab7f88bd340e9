package model

import (
	"time"
)

// Article stores one written piece published on the site.
type Article struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Slug      string    `gorm:"column:slug;uniqueIndex:idx_article_slug" json:"slug"`
	Content   string    `gorm:"column:content;type:text" json:"content,omitempty"`
	CoverURL  string    `gorm:"column:cover_url;type:text" json:"cover_url,omitempty"`
	Published bool      `gorm:"column:published;default:false" json:"published"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides gorm to use the articles table.
func (Article) TableName() string {
	return "articles"
}
