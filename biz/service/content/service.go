package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/Nacni/portfolio-media/biz/dal/db"
	"github.com/Nacni/portfolio-media/biz/dal/model"
	"github.com/Nacni/portfolio-media/pkg/storage"
	"github.com/Nacni/portfolio-media/pkg/validator"
	"github.com/google/uuid"

	"gorm.io/gorm"
)

var (
	ErrMediaNotFound        = errors.New("media record not found")
	ErrArticleNotFound      = errors.New("article not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrInvalidCommentTarget = errors.New("comment must reference exactly one of an article or a media record")
)

// Service owns all content operations: media records, articles, comments,
// and the files behind them. It holds the single process-wide database
// handle and storage backend, both constructed from configuration at
// startup.
type Service struct {
	db       *gorm.DB
	store    storage.Storage
	upload   *validator.UploadConfig
	media    *db.MediaDAO
	articles *db.ArticleDAO
	comments *db.CommentDAO
}

func NewService(database *gorm.DB, store storage.Storage, upload *validator.UploadConfig) *Service {
	if upload == nil {
		upload = validator.DefaultUploadConfig()
	}
	return &Service{
		db:       database,
		store:    store,
		upload:   upload,
		media:    db.NewMediaDAO(),
		articles: db.NewArticleDAO(),
		comments: db.NewCommentDAO(),
	}
}

// AutoMigrate creates or updates the owned tables.
func (s *Service) AutoMigrate() error {
	return s.db.AutoMigrate(&model.Media{}, &model.Article{}, &model.Comment{})
}

// --------------------- Media operations ---------------------

// ExternalVideoInput describes a link-only video record.
type ExternalVideoInput struct {
	URL          string
	Title        string
	Category     string
	Description  string
	ThumbnailURL string
}

// CreateExternalVideo records a video hosted on a third-party platform.
// The filename column stays NULL: the schema is genuinely nullable here,
// and the old empty-string workaround for the NOT NULL constraint is gone.
func (s *Service) CreateExternalVideo(ctx context.Context, input *ExternalVideoInput) (*model.Media, error) {
	if input == nil {
		return nil, errors.New("input required")
	}
	url := strings.TrimSpace(input.URL)
	if url == "" {
		return nil, errors.New("video url is required")
	}

	media := &model.Media{
		URL:          url,
		Filename:     nil,
		Title:        strings.TrimSpace(input.Title),
		Category:     strings.TrimSpace(input.Category),
		Description:  input.Description,
		ThumbnailURL: strings.TrimSpace(input.ThumbnailURL),
	}
	if err := s.media.Create(ctx, s.db, media); err != nil {
		return nil, err
	}
	return media, nil
}

// UploadInput carries metadata and payload for a file upload.
type UploadInput struct {
	FileName    string
	ContentType string
	Data        []byte
	Title       string
	Category    string
	Description string
	AltText     string
}

// CreateUpload stores the file in the storage backend and records it.
func (s *Service) CreateUpload(ctx context.Context, input *UploadInput) (*model.Media, error) {
	if input == nil {
		return nil, errors.New("input required")
	}
	fileName := strings.TrimSpace(input.FileName)
	if fileName == "" {
		return nil, errors.New("file name is required")
	}
	if err := s.upload.ValidateFileSize(int64(len(input.Data))); err != nil {
		return nil, err
	}
	if err := s.upload.ValidateMimeType(input.ContentType, head(input.Data)); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	key := id + "/" + fileName
	if err := s.store.PutObject(ctx, key, bytes.NewReader(input.Data), input.ContentType, int64(len(input.Data))); err != nil {
		return nil, fmt.Errorf("store object: %w", err)
	}

	url, err := s.store.GenerateURL(ctx, key, fileName)
	if err != nil {
		return nil, fmt.Errorf("generate url: %w", err)
	}

	media := &model.Media{
		ID:          id,
		URL:         url,
		Filename:    &fileName,
		Title:       strings.TrimSpace(input.Title),
		Category:    strings.TrimSpace(input.Category),
		Description: input.Description,
		AltText:     input.AltText,
	}
	if err := s.media.Create(ctx, s.db, media); err != nil {
		// Roll the object back so storage does not accumulate orphans.
		_ = s.store.DeleteObject(ctx, key)
		return nil, err
	}
	return media, nil
}

// ListMedia returns all content records ordered by created_at.
func (s *Service) ListMedia(ctx context.Context, descending bool) ([]model.Media, error) {
	return s.media.List(ctx, s.db, descending)
}

// ListMediaByCategory returns the records tagged with the given category.
func (s *Service) ListMediaByCategory(ctx context.Context, category string, descending bool) ([]model.Media, error) {
	return s.media.ListByCategory(ctx, s.db, category, descending)
}

// ListVideos returns only the records the classifier accepts as videos,
// uploaded or external. The admin and public listings both call this.
func (s *Service) ListVideos(ctx context.Context, descending bool) ([]model.Media, error) {
	records, err := s.media.List(ctx, s.db, descending)
	if err != nil {
		return nil, err
	}
	videos := make([]model.Media, 0, len(records))
	for i := range records {
		if IsVideo(&records[i]) {
			videos = append(videos, records[i])
		}
	}
	return videos, nil
}

// GetMedia fetches a single record by id.
func (s *Service) GetMedia(ctx context.Context, id string) (*model.Media, error) {
	media, err := s.media.GetByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return media, nil
}

// UpdateMediaInput is the complete intended state of a media record. Every
// field is persisted, including ThumbnailURL when unchanged: the one
// update call-site that used to omit it left thumbnails perpetually stale,
// so the contract here is full state or nothing.
type UpdateMediaInput struct {
	ID           string
	URL          string
	Filename     *string
	Title        string
	Description  string
	Category     string
	AltText      string
	ThumbnailURL string
}

// UpdateMedia replaces the stored record with the supplied state.
func (s *Service) UpdateMedia(ctx context.Context, input *UpdateMediaInput) (*model.Media, error) {
	if input == nil {
		return nil, errors.New("input required")
	}
	if input.ID == "" {
		return nil, errors.New("media id is required")
	}
	if strings.TrimSpace(input.URL) == "" {
		return nil, errors.New("media url is required")
	}

	media := &model.Media{
		ID:           input.ID,
		URL:          strings.TrimSpace(input.URL),
		Filename:     normalizeFilename(input.Filename),
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		AltText:      input.AltText,
		ThumbnailURL: input.ThumbnailURL,
	}
	if err := s.media.Update(ctx, s.db, media); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return s.GetMedia(ctx, input.ID)
}

// DeleteMedia removes the record, its comments, and any stored file.
// Comment deletion cascades: a comment pointing at deleted media is
// useless to every view, so none are left orphaned.
func (s *Service) DeleteMedia(ctx context.Context, id string) error {
	media, err := s.GetMedia(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.comments.DeleteByMediaID(ctx, tx, id); err != nil {
			return err
		}
		return s.media.DeleteByID(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	if name := media.FilenameOrEmpty(); name != "" {
		if err := s.store.DeleteObject(ctx, media.ID+"/"+name); err != nil {
			return fmt.Errorf("record deleted but object removal failed: %w", err)
		}
	}
	if key := thumbnailKey(media); key != "" {
		if err := s.store.DeleteObject(ctx, key); err != nil {
			return fmt.Errorf("record deleted but thumbnail removal failed: %w", err)
		}
	}
	return nil
}

// thumbnailKey recovers the storage key of the record's thumbnail from its
// URL. Empty when the record has no thumbnail.
func thumbnailKey(media *model.Media) string {
	if media.ThumbnailURL == "" {
		return ""
	}
	u, err := url.Parse(media.ThumbnailURL)
	if err != nil {
		return ""
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return ""
	}
	return media.ID + "/" + name
}

// UploadThumbnail stores a preview image for the record and persists the
// new thumbnail_url through the full-state update path.
func (s *Service) UploadThumbnail(ctx context.Context, mediaID, fileName, contentType string, data []byte) (*model.Media, error) {
	media, err := s.GetMedia(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, errors.New("thumbnail file name is required")
	}
	if err := s.upload.ValidateFileSize(int64(len(data))); err != nil {
		return nil, err
	}
	if err := validator.ValidateImage(contentType, head(data)); err != nil {
		return nil, err
	}

	key := media.ID + "/thumb_" + fileName
	if err := s.store.PutObject(ctx, key, bytes.NewReader(data), contentType, int64(len(data))); err != nil {
		return nil, fmt.Errorf("store thumbnail: %w", err)
	}
	url, err := s.store.GenerateURL(ctx, key, "thumb_"+fileName)
	if err != nil {
		return nil, fmt.Errorf("generate thumbnail url: %w", err)
	}

	return s.UpdateMedia(ctx, &UpdateMediaInput{
		ID:           media.ID,
		URL:          media.URL,
		Filename:     media.Filename,
		Title:        media.Title,
		Description:  media.Description,
		Category:     media.Category,
		AltText:      media.AltText,
		ThumbnailURL: url,
	})
}

// GetMediaFile returns the record and a reader over its stored content.
// The returned reader must be closed by the caller.
func (s *Service) GetMediaFile(ctx context.Context, mediaID, fileName string) (*model.Media, io.ReadCloser, error) {
	media, err := s.GetMedia(ctx, mediaID)
	if err != nil {
		return nil, nil, err
	}
	reader, err := s.store.GetObject(ctx, mediaID+"/"+fileName)
	if err != nil {
		return nil, nil, err
	}
	return media, reader, nil
}

// --------------------- Comment operations ---------------------

// CommentInput describes a visitor comment submission.
type CommentInput struct {
	ArticleID *string
	MediaID   *string
	Name      string
	Email     string
	Content   string
}

// SubmitComment stores a new comment awaiting moderation. Exactly one of
// ArticleID or MediaID must be set and must reference an existing row.
func (s *Service) SubmitComment(ctx context.Context, input *CommentInput) (*model.Comment, error) {
	if input == nil {
		return nil, errors.New("input required")
	}
	hasArticle := input.ArticleID != nil && *input.ArticleID != ""
	hasMedia := input.MediaID != nil && *input.MediaID != ""
	if hasArticle == hasMedia {
		return nil, ErrInvalidCommentTarget
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.New("comment name is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, errors.New("comment content is required")
	}

	if hasArticle {
		if _, err := s.articles.GetByID(ctx, s.db, *input.ArticleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrArticleNotFound
			}
			return nil, err
		}
	} else {
		if _, err := s.media.GetByID(ctx, s.db, *input.MediaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMediaNotFound
			}
			return nil, err
		}
	}

	comment := &model.Comment{
		ArticleID: input.ArticleID,
		MediaID:   input.MediaID,
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Content:   strings.TrimSpace(input.Content),
		Approved:  false,
	}
	if err := s.comments.Create(ctx, s.db, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListMediaComments returns comments on a media record; unapproved ones are
// only included for moderation views.
func (s *Service) ListMediaComments(ctx context.Context, mediaID string, includeUnapproved bool) ([]model.Comment, error) {
	return s.comments.ListByMedia(ctx, s.db, mediaID, !includeUnapproved)
}

// ListArticleComments returns comments on an article.
func (s *Service) ListArticleComments(ctx context.Context, articleID string, includeUnapproved bool) ([]model.Comment, error) {
	return s.comments.ListByArticle(ctx, s.db, articleID, !includeUnapproved)
}

// ListPendingComments returns the moderation queue, oldest first.
func (s *Service) ListPendingComments(ctx context.Context) ([]model.Comment, error) {
	return s.comments.ListPending(ctx, s.db)
}

// ApproveComment makes a comment publicly visible.
func (s *Service) ApproveComment(ctx context.Context, id string) error {
	if err := s.comments.SetApproved(ctx, s.db, id, true); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}

// DeleteComment removes a comment.
func (s *Service) DeleteComment(ctx context.Context, id string) error {
	if err := s.comments.DeleteByID(ctx, s.db, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}

// --------------------- Article operations ---------------------

// ArticleInput is the complete intended state of an article.
type ArticleInput struct {
	Title     string
	Slug      string
	Content   string
	CoverURL  string
	Published bool
}

// CreateArticle stores a new article.
func (s *Service) CreateArticle(ctx context.Context, input *ArticleInput) (*model.Article, error) {
	if input == nil {
		return nil, errors.New("input required")
	}
	slug, ok := validator.SanitizeSlug(input.Slug)
	if !ok {
		return nil, fmt.Errorf("invalid article slug: %q", input.Slug)
	}
	article := &model.Article{
		Title:     strings.TrimSpace(input.Title),
		Slug:      slug,
		Content:   input.Content,
		CoverURL:  input.CoverURL,
		Published: input.Published,
	}
	if err := s.articles.Create(ctx, s.db, article); err != nil {
		return nil, err
	}
	return article, nil
}

// UpdateArticle replaces the stored article with the supplied state.
func (s *Service) UpdateArticle(ctx context.Context, id string, input *ArticleInput) (*model.Article, error) {
	if input == nil {
		return nil, errors.New("input required")
	}
	if id == "" {
		return nil, errors.New("article id is required")
	}
	slug, ok := validator.SanitizeSlug(input.Slug)
	if !ok {
		return nil, fmt.Errorf("invalid article slug: %q", input.Slug)
	}
	article := &model.Article{
		ID:        id,
		Title:     strings.TrimSpace(input.Title),
		Slug:      slug,
		Content:   input.Content,
		CoverURL:  input.CoverURL,
		Published: input.Published,
	}
	if err := s.articles.Update(ctx, s.db, article); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	updated, err := s.articles.GetByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ListArticles returns articles, optionally filtered to published ones.
// Draft visibility is reserved for the management surface.
func (s *Service) ListArticles(ctx context.Context, publishedOnly bool) ([]model.Article, error) {
	return s.articles.List(ctx, s.db, publishedOnly)
}

// GetArticleBySlug fetches one published article by its slug. Drafts look
// like missing articles to anonymous readers.
func (s *Service) GetArticleBySlug(ctx context.Context, slug string) (*model.Article, error) {
	article, err := s.articles.GetBySlug(ctx, s.db, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	if !article.Published {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// GetArticle fetches one article by id regardless of publication state.
func (s *Service) GetArticle(ctx context.Context, id string) (*model.Article, error) {
	article, err := s.articles.GetByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return article, nil
}

// DeleteArticle removes the article and its comments.
func (s *Service) DeleteArticle(ctx context.Context, id string) error {
	if _, err := s.articles.GetByID(ctx, s.db, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.comments.DeleteByArticleID(ctx, tx, id); err != nil {
			return err
		}
		return s.articles.DeleteByID(ctx, tx, id)
	})
}

// --------------------- helpers ---------------------

// normalizeFilename collapses the legacy empty-string convention to NULL.
// Old rows written under the NOT NULL workaround carry ""; every write path
// funnels through here so the shim never propagates.
func normalizeFilename(filename *string) *string {
	if filename == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*filename)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// head returns the sniffable prefix of a payload for MIME detection.
func head(data []byte) []byte {
	if len(data) > 512 {
		return data[:512]
	}
	return data
}
