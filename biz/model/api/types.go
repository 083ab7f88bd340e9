// Package api defines the JSON request and response shapes of the HTTP API.
package api

// CreateExternalVideoRequest records a video hosted on a third-party
// platform. No filename is involved; the record is link-only.
type CreateExternalVideoRequest struct {
	URL          string `json:"url"`
	Title        string `json:"title"`
	Category     string `json:"category,omitempty"`
	Description  string `json:"description,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// UpdateMediaRequest carries the complete intended state of a media record.
// Every field is persisted as given; thumbnail_url must be included even
// when unchanged.
type UpdateMediaRequest struct {
	URL          string  `json:"url"`
	Filename     *string `json:"filename"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	AltText      string  `json:"alt_text"`
	ThumbnailURL string  `json:"thumbnail_url"`
}

// SubmitCommentRequest is a public comment submission. Exactly one of
// article_id or media_id must be set.
type SubmitCommentRequest struct {
	ArticleID *string `json:"article_id,omitempty"`
	MediaID   *string `json:"media_id,omitempty"`
	Name      string  `json:"name"`
	Email     string  `json:"email,omitempty"`
	Content   string  `json:"content"`
}

// ArticleRequest carries the complete intended state of an article.
type ArticleRequest struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Content   string `json:"content"`
	CoverURL  string `json:"cover_url"`
	Published bool   `json:"published"`
}
