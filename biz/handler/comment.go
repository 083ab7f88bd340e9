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

// CommentHandler exposes comment submission and moderation endpoints.
type CommentHandler struct {
	service *content.Service
}

func NewCommentHandler(service *content.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// SubmitComment accepts a public comment; it stays hidden until approved.
func (h *CommentHandler) SubmitComment(ctx context.Context, c *app.RequestContext) {
	var req api.SubmitCommentRequest
	if err := c.BindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}

	comment, err := h.service.SubmitComment(ctx, &content.CommentInput{
		ArticleID: req.ArticleID,
		MediaID:   req.MediaID,
		Name:      req.Name,
		Email:     req.Email,
		Content:   req.Content,
	})
	if err != nil {
		if errors.Is(err, content.ErrMediaNotFound) || errors.Is(err, content.ErrArticleNotFound) {
			writeNotFound(c, err)
			return
		}
		writeBadRequest(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{"comment": comment},
	})
}

// ListComments returns approved comments for a media record or article.
func (h *CommentHandler) ListComments(ctx context.Context, c *app.RequestContext) {
	mediaID := c.Query("media_id")
	articleID := c.Query("article_id")

	var (
		comments any
		err      error
	)
	switch {
	case mediaID != "" && articleID == "":
		comments, err = h.service.ListMediaComments(ctx, mediaID, false)
	case articleID != "" && mediaID == "":
		comments, err = h.service.ListArticleComments(ctx, articleID, false)
	default:
		writeBadRequest(c, errors.New("exactly one of media_id or article_id is required"))
		return
	}
	if err != nil {
		writeInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{"comments": comments},
	})
}

// ListPendingComments returns the moderation queue.
func (h *CommentHandler) ListPendingComments(ctx context.Context, c *app.RequestContext) {
	comments, err := h.service.ListPendingComments(ctx)
	if err != nil {
		writeInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{"comments": comments},
	})
}

// ApproveComment makes a comment publicly visible.
func (h *CommentHandler) ApproveComment(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	if err := h.service.ApproveComment(ctx, id); err != nil {
		if errors.Is(err, content.ErrCommentNotFound) {
			writeNotFound(c, err)
			return
		}
		writeInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{}.ReturnOK())
}

// DeleteComment removes a comment.
func (h *CommentHandler) DeleteComment(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	if err := h.service.DeleteComment(ctx, id); err != nil {
		if errors.Is(err, content.ErrCommentNotFound) {
			writeNotFound(c, err)
			return
		}
		writeInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{}.ReturnOK())
}
