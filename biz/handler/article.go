package handler

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/Nacni/portfolio-media/biz/model/api"
	"github.com/Nacni/portfolio-media/biz/service/content"
	"github.com/Nacni/portfolio-media/pkg/common"
)

// ArticleHandler exposes article endpoints.
type ArticleHandler struct {
	service *content.Service
}

func NewArticleHandler(service *content.Service) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// ListArticles returns published articles, newest first. Drafts never
// appear here; the admin listing is a separate gated route.
func (h *ArticleHandler) ListArticles(ctx context.Context, c *app.RequestContext) {
	articles, err := h.service.ListArticles(ctx, true)
	if err != nil {
		writeInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{"articles": articles},
	})
}

// ListAllArticles returns every article including drafts.
func (h *ArticleHandler) ListAllArticles(ctx context.Context, c *app.RequestContext) {
	articles, err := h.service.ListArticles(ctx, false)
	if err != nil {
		writeInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{"articles": articles},
	})
}

// GetArticle returns one published article by slug. Unpublished slugs are
// indistinguishable from missing ones.
func (h *ArticleHandler) GetArticle(ctx context.Context, c *app.RequestContext) {
	slug := c.Param("slug")
	article, err := h.service.GetArticleBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, content.ErrArticleNotFound) {
			writeNotFound(c, err)
			return
		}
		writeInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{"article": article},
	})
}

// GetArticleByID returns one article by id regardless of publication state.
func (h *ArticleHandler) GetArticleByID(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	article, err := h.service.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, content.ErrArticleNotFound) {
			writeNotFound(c, err)
			return
		}
		writeInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{"article": article},
	})
}

// CreateArticle stores a new article.
func (h *ArticleHandler) CreateArticle(ctx context.Context, c *app.RequestContext) {
	var req api.ArticleRequest
	if err := c.BindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}

	article, err := h.service.CreateArticle(ctx, &content.ArticleInput{
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		CoverURL:  req.CoverURL,
		Published: req.Published,
	})
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{"article": article},
	})
}

// UpdateArticle replaces the stored article with the request's full state.
func (h *ArticleHandler) UpdateArticle(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")

	var req api.ArticleRequest
	if err := c.BindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}

	article, err := h.service.UpdateArticle(ctx, id, &content.ArticleInput{
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		CoverURL:  req.CoverURL,
		Published: req.Published,
	})
	if err != nil {
		if errors.Is(err, content.ErrArticleNotFound) {
			writeNotFound(c, err)
			return
		}
		writeBadRequest(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{"article": article},
	})
}

// DeleteArticle removes the article and its comments.
func (h *ArticleHandler) DeleteArticle(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	if err := h.service.DeleteArticle(ctx, id); err != nil {
		if errors.Is(err, content.ErrArticleNotFound) {
			writeNotFound(c, err)
			return
		}
		writeInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{}.ReturnOK())
}
