package db

import (
	"context"
	"errors"
	"testing"

	"github.com/Nacni/portfolio-media/biz/dal/model"

	"gorm.io/gorm"
)

func TestCommentDAO_Lifecycle(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewCommentDAO()
	ctx := context.Background()

	media := CreateTestMedia(t, db, "https://youtube.com/watch?v=abc", nil)

	comment := &model.Comment{
		MediaID: &media.ID,
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Content: "Great video",
	}
	if err := dao.Create(ctx, db, comment); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if comment.ID == "" {
		t.Error("Expected ID to be assigned after creation")
	}
	if comment.Approved {
		t.Error("Expected new comment to start unapproved")
	}

	t.Run("ApprovedOnlyFilter", func(t *testing.T) {
		visible, err := dao.ListByMedia(ctx, db, media.ID, true)
		if err != nil {
			t.Fatalf("ListByMedia failed: %v", err)
		}
		if len(visible) != 0 {
			t.Fatalf("Expected no approved comments yet, got %d", len(visible))
		}

		all, err := dao.ListByMedia(ctx, db, media.ID, false)
		if err != nil {
			t.Fatalf("ListByMedia failed: %v", err)
		}
		if len(all) != 1 {
			t.Fatalf("Expected 1 comment in moderation view, got %d", len(all))
		}
	})

	t.Run("Approve", func(t *testing.T) {
		if err := dao.SetApproved(ctx, db, comment.ID, true); err != nil {
			t.Fatalf("SetApproved failed: %v", err)
		}
		visible, err := dao.ListByMedia(ctx, db, media.ID, true)
		if err != nil {
			t.Fatalf("ListByMedia failed: %v", err)
		}
		if len(visible) != 1 {
			t.Fatalf("Expected 1 approved comment, got %d", len(visible))
		}
	})

	t.Run("ApproveMissing", func(t *testing.T) {
		if err := dao.SetApproved(ctx, db, "missing", true); err == nil {
			t.Error("Expected error approving missing comment")
		}
	})

	t.Run("DeleteByMediaID", func(t *testing.T) {
		if err := dao.DeleteByMediaID(ctx, db, media.ID); err != nil {
			t.Fatalf("DeleteByMediaID failed: %v", err)
		}
		remaining, err := dao.ListByMedia(ctx, db, media.ID, false)
		if err != nil {
			t.Fatalf("ListByMedia failed: %v", err)
		}
		if len(remaining) != 0 {
			t.Fatalf("Expected no comments after cascade delete, got %d", len(remaining))
		}
	})
}

func TestCommentDAO_ListPending(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewCommentDAO()
	ctx := context.Background()

	article := CreateTestArticle(t, db, "test-article")

	pendingComment := &model.Comment{ArticleID: &article.ID, Name: "A", Content: "pending"}
	approvedComment := &model.Comment{ArticleID: &article.ID, Name: "B", Content: "approved", Approved: true}
	for _, c := range []*model.Comment{pendingComment, approvedComment} {
		if err := dao.Create(ctx, db, c); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	pending, err := dao.ListPending(ctx, db)
	if err != nil {
		t.Fatalf("ListPending failed: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != pendingComment.ID {
		t.Fatalf("Expected only the pending comment, got %d", len(pending))
	}
}

func TestCommentDAO_DeleteMissing(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewCommentDAO()
	ctx := context.Background()

	if err := dao.DeleteByID(ctx, db, "no-such-id"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Expected ErrRecordNotFound, got %v", err)
	}
}
