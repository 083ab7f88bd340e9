package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/Nacni/portfolio-media/biz/handler"
	"github.com/Nacni/portfolio-media/biz/middleware"
	"github.com/Nacni/portfolio-media/pkg/config"
)

// Register configures the public and admin HTTP routes.
func Register(r *server.Hertz, authCfg *config.AuthConfig, media *handler.MediaHandler, articles *handler.ArticleHandler, comments *handler.CommentHandler) {
	v1 := r.Group("/api/v1")

	// Public site surface: read-only listings plus comment submission.
	v1.GET("/media", media.ListMedia)
	v1.GET("/media/videos", media.ListVideos)
	v1.GET("/media/file/:mediaID/:fileName", media.GetFile)
	v1.GET("/media/:id", media.GetMedia)

	v1.GET("/articles", articles.ListArticles)
	v1.GET("/articles/:slug", articles.GetArticle)

	v1.GET("/comments", comments.ListComments)
	v1.POST("/comments", comments.SubmitComment)

	// Management surface: the admin gate runs before any handler, and
	// mutations serialize through the write lock when Redis is enabled.
	admin := v1.Group("/admin", middleware.RequireAdmin(authCfg))
	admin.Use(middleware.WriteLockMw()...)

	admin.POST("/media/external", media.CreateExternalVideo)
	admin.POST("/media/upload", media.UploadFile)
	admin.PUT("/media/:id", media.UpdateMedia)
	admin.DELETE("/media/:id", media.DeleteMedia)
	admin.POST("/media/:id/thumbnail", media.UploadThumbnail)

	admin.GET("/articles", articles.ListAllArticles)
	admin.GET("/articles/:id", articles.GetArticleByID)
	admin.POST("/articles", articles.CreateArticle)
	admin.PUT("/articles/:id", articles.UpdateArticle)
	admin.DELETE("/articles/:id", articles.DeleteArticle)

	admin.GET("/comments/pending", comments.ListPendingComments)
	admin.POST("/comments/:id/approve", comments.ApproveComment)
	admin.DELETE("/comments/:id", comments.DeleteComment)

	r.GET("/ping", handler.Ping)
}
