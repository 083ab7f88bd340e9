package db

import (
	"context"
	"errors"

	"github.com/Nacni/portfolio-media/biz/dal/model"
	"github.com/google/uuid"

	"gorm.io/gorm"
)

// CommentDAO handles CRUD operations for visitor comments.
type CommentDAO struct{}

func NewCommentDAO() *CommentDAO { return &CommentDAO{} }

func (dao *CommentDAO) Create(ctx context.Context, db *gorm.DB, comment *model.Comment) error {
	if comment == nil {
		return errors.New("comment must not be nil")
	}
	if comment.Content == "" {
		return errors.New("comment content is required")
	}
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	return db.WithContext(ctx).Create(comment).Error
}

func (dao *CommentDAO) GetByID(ctx context.Context, db *gorm.DB, id string) (*model.Comment, error) {
	var comment model.Comment
	if err := db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (dao *CommentDAO) ListByMedia(ctx context.Context, db *gorm.DB, mediaID string, approvedOnly bool) ([]model.Comment, error) {
	query := db.WithContext(ctx).Where("media_id = ?", mediaID)
	if approvedOnly {
		query = query.Where("approved = ?", true)
	}
	var comments []model.Comment
	if err := query.Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (dao *CommentDAO) ListByArticle(ctx context.Context, db *gorm.DB, articleID string, approvedOnly bool) ([]model.Comment, error) {
	query := db.WithContext(ctx).Where("article_id = ?", articleID)
	if approvedOnly {
		query = query.Where("approved = ?", true)
	}
	var comments []model.Comment
	if err := query.Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// ListPending returns comments awaiting moderation, oldest first.
func (dao *CommentDAO) ListPending(ctx context.Context, db *gorm.DB) ([]model.Comment, error) {
	var comments []model.Comment
	if err := db.WithContext(ctx).
		Where("approved = ?", false).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (dao *CommentDAO) SetApproved(ctx context.Context, db *gorm.DB, id string, approved bool) error {
	result := db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Update("approved", approved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (dao *CommentDAO) DeleteByID(ctx context.Context, db *gorm.DB, id string) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&model.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByMediaID removes every comment attached to the given media record.
// Used when a media record is deleted so no orphaned comments remain.
func (dao *CommentDAO) DeleteByMediaID(ctx context.Context, db *gorm.DB, mediaID string) error {
	return db.WithContext(ctx).Where("media_id = ?", mediaID).Delete(&model.Comment{}).Error
}

// DeleteByArticleID removes every comment attached to the given article.
func (dao *CommentDAO) DeleteByArticleID(ctx context.Context, db *gorm.DB, articleID string) error {
	return db.WithContext(ctx).Where("article_id = ?", articleID).Delete(&model.Comment{}).Error
}
