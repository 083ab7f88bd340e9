package db

import (
	"context"
	"errors"

	"github.com/Nacni/portfolio-media/biz/dal/model"
	"github.com/google/uuid"

	"gorm.io/gorm"
)

// MediaDAO handles CRUD operations for media records.
type MediaDAO struct{}

func NewMediaDAO() *MediaDAO { return &MediaDAO{} }

func (dao *MediaDAO) Create(ctx context.Context, db *gorm.DB, media *model.Media) error {
	if media == nil {
		return errors.New("media must not be nil")
	}
	if media.URL == "" {
		return errors.New("media url is required")
	}
	if media.ID == "" {
		media.ID = uuid.NewString()
	}
	return db.WithContext(ctx).Create(media).Error
}

func (dao *MediaDAO) GetByID(ctx context.Context, db *gorm.DB, id string) (*model.Media, error) {
	var media model.Media
	if err := db.WithContext(ctx).Where("id = ?", id).First(&media).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

// List returns every media record ordered by created_at. There is no
// pagination; list views load the full table.
func (dao *MediaDAO) List(ctx context.Context, db *gorm.DB, descending bool) ([]model.Media, error) {
	order := "created_at ASC"
	if descending {
		order = "created_at DESC"
	}
	var records []model.Media
	if err := db.WithContext(ctx).Order(order).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (dao *MediaDAO) ListByCategory(ctx context.Context, db *gorm.DB, category string, descending bool) ([]model.Media, error) {
	order := "created_at ASC"
	if descending {
		order = "created_at DESC"
	}
	var records []model.Media
	if err := db.WithContext(ctx).
		Where("category = ?", category).
		Order(order).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Update persists the complete intended state of a media record. Every
// mutable column is written explicitly through a map, so NULL filenames and
// unchanged thumbnail_url values are stored rather than silently skipped
// the way a zero-value struct update would skip them.
func (dao *MediaDAO) Update(ctx context.Context, db *gorm.DB, media *model.Media) error {
	if media == nil {
		return errors.New("media must not be nil")
	}
	if media.ID == "" {
		return errors.New("media id is required")
	}
	fields := map[string]any{
		"url":           media.URL,
		"filename":      media.Filename,
		"title":         media.Title,
		"description":   media.Description,
		"category":      media.Category,
		"alt_text":      media.AltText,
		"thumbnail_url": media.ThumbnailURL,
	}
	result := db.WithContext(ctx).
		Model(&model.Media{}).
		Where("id = ?", media.ID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateFields writes only the named columns. Callers own the risk that an
// omitted column keeps its stored value; the service layer's update path
// always goes through Update instead.
func (dao *MediaDAO) UpdateFields(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	if id == "" {
		return errors.New("media id is required")
	}
	if len(fields) == 0 {
		return nil
	}
	result := db.WithContext(ctx).
		Model(&model.Media{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (dao *MediaDAO) DeleteByID(ctx context.Context, db *gorm.DB, id string) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&model.Media{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
