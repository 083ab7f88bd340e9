package model

import (
	"time"
)

// Media stores one content record: either a locally uploaded file or an
// externally hosted video referenced by URL only.
//
// Filename is genuinely nullable: NULL (or, for legacy rows, the empty
// string) means the record has no local file and its playable content lives
// at URL. The historical schema forced NOT NULL here and callers papered
// over it with empty strings; that convention survives only as tolerated
// legacy input, never as something new writes produce.
type Media struct {
	ID           string    `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	URL          string    `gorm:"column:url;type:text;not null" json:"url"`
	Filename     *string   `gorm:"column:filename;type:text" json:"filename,omitempty"`
	Title        string    `gorm:"column:title" json:"title,omitempty"`
	Description  string    `gorm:"column:description;type:text" json:"description,omitempty"`
	Category     string    `gorm:"column:category;index:idx_media_category" json:"category,omitempty"`
	AltText      string    `gorm:"column:alt_text" json:"alt_text,omitempty"`
	ThumbnailURL string    `gorm:"column:thumbnail_url;type:text" json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides gorm to use the media table.
func (Media) TableName() string {
	return "media"
}

// FilenameOrEmpty returns the filename treating NULL as empty string.
func (m *Media) FilenameOrEmpty() string {
	if m.Filename == nil {
		return ""
	}
	return *m.Filename
}
