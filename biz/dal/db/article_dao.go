package db

import (
	"context"
	"errors"

	"github.com/Nacni/portfolio-media/biz/dal/model"
	"github.com/google/uuid"

	"gorm.io/gorm"
)

// ArticleDAO handles CRUD operations for articles.
type ArticleDAO struct{}

func NewArticleDAO() *ArticleDAO { return &ArticleDAO{} }

func (dao *ArticleDAO) Create(ctx context.Context, db *gorm.DB, article *model.Article) error {
	if article == nil {
		return errors.New("article must not be nil")
	}
	if article.Title == "" {
		return errors.New("article title is required")
	}
	if article.Slug == "" {
		return errors.New("article slug is required")
	}
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	return db.WithContext(ctx).Create(article).Error
}

func (dao *ArticleDAO) GetByID(ctx context.Context, db *gorm.DB, id string) (*model.Article, error) {
	var article model.Article
	if err := db.WithContext(ctx).Where("id = ?", id).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (dao *ArticleDAO) GetBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Article, error) {
	var article model.Article
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (dao *ArticleDAO) List(ctx context.Context, db *gorm.DB, publishedOnly bool) ([]model.Article, error) {
	query := db.WithContext(ctx)
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	var articles []model.Article
	if err := query.Order("created_at DESC").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// Update persists the complete intended state of an article through an
// explicit column map, same contract as MediaDAO.Update.
func (dao *ArticleDAO) Update(ctx context.Context, db *gorm.DB, article *model.Article) error {
	if article == nil {
		return errors.New("article must not be nil")
	}
	if article.ID == "" {
		return errors.New("article id is required")
	}
	fields := map[string]any{
		"title":     article.Title,
		"slug":      article.Slug,
		"content":   article.Content,
		"cover_url": article.CoverURL,
		"published": article.Published,
	}
	result := db.WithContext(ctx).
		Model(&model.Article{}).
		Where("id = ?", article.ID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (dao *ArticleDAO) DeleteByID(ctx context.Context, db *gorm.DB, id string) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&model.Article{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
