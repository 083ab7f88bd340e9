package router_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Nacni/portfolio-media/biz/handler"
	"github.com/Nacni/portfolio-media/biz/middleware"
	"github.com/Nacni/portfolio-media/biz/router"
	"github.com/Nacni/portfolio-media/biz/service/content"
	"github.com/Nacni/portfolio-media/pkg/config"
	"github.com/Nacni/portfolio-media/pkg/storage/local"
	"github.com/Nacni/portfolio-media/pkg/validator"
)

const testSecret = "router-test-secret"

func newTestRouter(t *testing.T) (*server.Hertz, *content.Service) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	store, err := local.New(t.TempDir())
	if err != nil {
		t.Fatalf("open local storage: %v", err)
	}
	svc := content.NewService(db, store, validator.DefaultUploadConfig())
	if err := svc.AutoMigrate(); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	authCfg := &config.AuthConfig{
		JWTSecret:   testSecret,
		AdminEmails: []string{"admin@example.com"},
		LoginPath:   "/admin/login",
	}

	h := server.Default()
	h.Use(middleware.Auth(testSecret))
	router.Register(h, authCfg,
		handler.NewMediaHandler(svc),
		handler.NewArticleHandler(svc),
		handler.NewCommentHandler(svc),
	)
	return h, svc
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "admin@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func envelopeCode(t *testing.T, body []byte) int {
	t.Helper()
	var envelope struct {
		Code int `json:"code"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("decode response %q: %v", body, err)
	}
	return envelope.Code
}

func TestDraftArticlesHiddenFromPublicRoutes(t *testing.T) {
	h, svc := newTestRouter(t)

	draft, err := svc.CreateArticle(context.Background(), &content.ArticleInput{
		Title:   "Unfinished",
		Slug:    "unfinished-notes",
		Content: "still writing",
	})
	if err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}

	t.Run("PublicListingIgnoresDraftToggle", func(t *testing.T) {
		w := ut.PerformRequest(h.Engine, "GET", "/api/v1/articles?all=1", nil)
		body := w.Result().Body()
		if code := envelopeCode(t, body); code != 200 {
			t.Fatalf("expected code 200, got %d", code)
		}
		if strings.Contains(string(body), draft.Slug) {
			t.Fatalf("draft leaked into public listing: %s", body)
		}
	})

	t.Run("PublicSlugLookupHidesDraft", func(t *testing.T) {
		w := ut.PerformRequest(h.Engine, "GET", "/api/v1/articles/unfinished-notes", nil)
		body := w.Result().Body()
		if code := envelopeCode(t, body); code != 404 {
			t.Fatalf("expected code 404 for draft slug, got %d: %s", code, body)
		}
	})

	t.Run("AdminListingRequiresSession", func(t *testing.T) {
		w := ut.PerformRequest(h.Engine, "GET", "/api/v1/admin/articles", nil)
		body := w.Result().Body()
		if code := envelopeCode(t, body); code != 401 {
			t.Fatalf("expected code 401 without session, got %d", code)
		}
	})

	t.Run("AdminSeesDrafts", func(t *testing.T) {
		auth := ut.Header{Key: "Authorization", Value: "Bearer " + adminToken(t)}

		w := ut.PerformRequest(h.Engine, "GET", "/api/v1/admin/articles", nil, auth)
		body := w.Result().Body()
		if code := envelopeCode(t, body); code != 200 {
			t.Fatalf("expected code 200, got %d: %s", code, body)
		}
		if !strings.Contains(string(body), draft.Slug) {
			t.Fatalf("admin listing missing draft: %s", body)
		}

		w = ut.PerformRequest(h.Engine, "GET", "/api/v1/admin/articles/"+draft.ID, nil, auth)
		body = w.Result().Body()
		if code := envelopeCode(t, body); code != 200 {
			t.Fatalf("expected code 200, got %d: %s", code, body)
		}
		if !strings.Contains(string(body), draft.Slug) {
			t.Fatalf("admin lookup missing draft: %s", body)
		}
	})

	t.Run("PublishedArticleVisible", func(t *testing.T) {
		published, err := svc.CreateArticle(context.Background(), &content.ArticleInput{
			Title:     "Done",
			Slug:      "finished-notes",
			Content:   "shipped",
			Published: true,
		})
		if err != nil {
			t.Fatalf("CreateArticle: %v", err)
		}

		w := ut.PerformRequest(h.Engine, "GET", "/api/v1/articles/"+published.Slug, nil)
		body := w.Result().Body()
		if code := envelopeCode(t, body); code != 200 {
			t.Fatalf("expected code 200, got %d: %s", code, body)
		}
	})
}
