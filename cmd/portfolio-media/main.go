package main

import (
	"context"
	"io/fs"
	"log"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/Nacni/portfolio-media/biz/handler"
	"github.com/Nacni/portfolio-media/biz/middleware"
	"github.com/Nacni/portfolio-media/biz/router"
	"github.com/Nacni/portfolio-media/biz/service/content"
	"github.com/Nacni/portfolio-media/pkg/config"
	"github.com/Nacni/portfolio-media/pkg/database"
	"github.com/Nacni/portfolio-media/pkg/lock"
	"github.com/Nacni/portfolio-media/pkg/redis"
	"github.com/Nacni/portfolio-media/pkg/static"
	"github.com/Nacni/portfolio-media/pkg/storage"
	"github.com/Nacni/portfolio-media/pkg/validator"
)

const (
	writeLockKey     = "portfolio_media:write_lock"
	writeLockTTL     = 30 * time.Second
	writeLockTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if len(cfg.Auth.AdminEmails) == 0 {
		log.Printf("Warning: auth.admin_emails is empty; every admin request will be denied")
	}
	if cfg.Auth.JWTSecret == "" {
		log.Printf("Warning: auth.jwt_secret is empty; sessions cannot be verified")
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	store, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	log.Printf("Storage backend: %s", store.Type())

	svc := content.NewService(db, store, uploadConfig(cfg))
	if err := svc.AutoMigrate(); err != nil {
		log.Fatalf("migrate tables: %v", err)
	}

	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		log.Fatalf("connect redis: %v", err)
	}
	if redisClient != nil {
		middleware.InitWriteLock(lock.New(redisClient, writeLockKey, writeLockTTL, writeLockTimeout))
		log.Printf("Write lock enabled via Redis at %s", cfg.Redis.Address)
	}

	h := server.Default(server.WithHostPorts(cfg.Server.Address))
	h.Use(
		middleware.Recovery(),
		middleware.Logging(),
		middleware.CORS(&cfg.CORS),
		middleware.Auth(cfg.Auth.JWTSecret),
	)

	router.Register(h, &cfg.Auth,
		handler.NewMediaHandler(svc),
		handler.NewArticleHandler(svc),
		handler.NewCommentHandler(svc),
	)

	registerSite(h, config.NormalizeBasePath(cfg.Server.BasePath))

	log.Printf("Listening on %s", cfg.Server.Address)
	h.Spin()
}

// registerSite serves the embedded front-end build at basePath, which must
// already be normalized ("" mounts at the root).
func registerSite(h *server.Hertz, basePath string) {
	web, err := static.WebFS()
	if err != nil {
		log.Printf("Warning: embedded site unavailable: %v", err)
		return
	}
	index, err := fs.ReadFile(web, "index.html")
	if err != nil {
		log.Printf("Warning: embedded site has no index.html: %v", err)
		return
	}
	serve := func(ctx context.Context, c *app.RequestContext) {
		c.Data(consts.StatusOK, "text/html; charset=utf-8", index)
	}
	if basePath == "" {
		h.GET("/", serve)
		return
	}
	h.GET(basePath, serve)
	h.GET(basePath+"/", serve)
}

func uploadConfig(cfg *config.Config) *validator.UploadConfig {
	upload := validator.DefaultUploadConfig()
	if cfg.Upload.MaxSize > 0 {
		upload.MaxFileSize = cfg.Upload.MaxSize
	}
	if len(cfg.Upload.AllowedTypes) > 0 {
		allowed := make(map[string]bool, len(cfg.Upload.AllowedTypes))
		for _, mime := range cfg.Upload.AllowedTypes {
			allowed[mime] = true
		}
		upload.AllowedMimeTypes = allowed
	}
	return upload
}
