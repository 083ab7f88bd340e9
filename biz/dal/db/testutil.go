package db

import (
	"context"
	"testing"

	"github.com/Nacni/portfolio-media/biz/dal/model"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Reduce log noise in tests
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto migrate all tables
	if err := db.AutoMigrate(
		&model.Media{},
		&model.Article{},
		&model.Comment{},
	); err != nil {
		t.Fatalf("Failed to migrate tables: %v", err)
	}

	return db
}

// CleanupTestDB closes the database connection
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Logf("Warning: Failed to get underlying DB: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Logf("Warning: Failed to close DB: %v", err)
	}
}

// CreateTestMedia creates a media record with default values
func CreateTestMedia(t *testing.T, db *gorm.DB, url string, filename *string) *model.Media {
	t.Helper()
	dao := NewMediaDAO()
	media := &model.Media{
		URL:      url,
		Filename: filename,
		Title:    "Test media",
	}
	if err := dao.Create(context.Background(), db, media); err != nil {
		t.Fatalf("Failed to create test media: %v", err)
	}
	return media
}

// CreateTestArticle creates an article with default values
func CreateTestArticle(t *testing.T, db *gorm.DB, slug string) *model.Article {
	t.Helper()
	dao := NewArticleDAO()
	article := &model.Article{
		Title:     "Test " + slug,
		Slug:      slug,
		Content:   "Test content",
		Published: true,
	}
	if err := dao.Create(context.Background(), db, article); err != nil {
		t.Fatalf("Failed to create test article: %v", err)
	}
	return article
}
