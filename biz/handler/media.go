package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/Nacni/portfolio-media/biz/model/api"
	"github.com/Nacni/portfolio-media/biz/service/content"
	"github.com/Nacni/portfolio-media/pkg/common"
)

// MediaHandler exposes media record and file endpoints.
type MediaHandler struct {
	service *content.Service
}

func NewMediaHandler(service *content.Service) *MediaHandler {
	return &MediaHandler{service: service}
}

// ListMedia returns every content record, newest first.
func (h *MediaHandler) ListMedia(ctx context.Context, c *app.RequestContext) {
	category := strings.TrimSpace(c.Query("category"))

	var (
		records any
		err     error
	)
	if category != "" {
		records, err = h.service.ListMediaByCategory(ctx, category, true)
	} else {
		records, err = h.service.ListMedia(ctx, true)
	}
	if err != nil {
		writeInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{"media": records},
	})
}

// ListVideos returns only records the classifier accepts as videos. The
// admin listing calls this same endpoint; there is one classifier.
func (h *MediaHandler) ListVideos(ctx context.Context, c *app.RequestContext) {
	videos, err := h.service.ListVideos(ctx, true)
	if err != nil {
		writeInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{"videos": videos},
	})
}

// GetMedia returns a single record by id.
func (h *MediaHandler) GetMedia(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	media, err := h.service.GetMedia(ctx, id)
	if err != nil {
		if errors.Is(err, content.ErrMediaNotFound) {
			writeNotFound(c, err)
			return
		}
		writeInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{"media": media},
	})
}

// GetFile streams stored file content back to the client.
func (h *MediaHandler) GetFile(ctx context.Context, c *app.RequestContext) {
	mediaID := c.Param("mediaID")
	fileName := c.Param("fileName")

	media, reader, err := h.service.GetMediaFile(ctx, mediaID, fileName)
	if err != nil {
		if errors.Is(err, content.ErrMediaNotFound) {
			writeNotFound(c, err)
			return
		}
		writeInternalError(c, err)
		return
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		writeInternalError(c, err)
		return
	}

	contentType := http.DetectContentType(data)
	if name := media.FilenameOrEmpty(); name != "" {
		c.Response.Header.Set("Content-Disposition", fmt.Sprintf("inline; filename=\"%s\"", name))
	}
	c.Data(consts.StatusOK, contentType, data)
}

// CreateExternalVideo records a link-only video.
func (h *MediaHandler) CreateExternalVideo(ctx context.Context, c *app.RequestContext) {
	var req api.CreateExternalVideoRequest
	if err := c.BindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}

	media, err := h.service.CreateExternalVideo(ctx, &content.ExternalVideoInput{
		URL:          req.URL,
		Title:        req.Title,
		Category:     req.Category,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{"media": media},
	})
}

// UploadFile handles multipart uploads and persists the record through the
// service layer.
func (h *MediaHandler) UploadFile(ctx context.Context, c *app.RequestContext) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeInternalError(c, err)
		return
	}

	media, err := h.service.CreateUpload(ctx, &content.UploadInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
		Title:       string(c.FormValue("title")),
		Category:    string(c.FormValue("category")),
		Description: string(c.FormValue("description")),
		AltText:     string(c.FormValue("alt_text")),
	})
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{"media": media},
	})
}

// UpdateMedia replaces the stored record with the request's full state.
func (h *MediaHandler) UpdateMedia(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")

	var req api.UpdateMediaRequest
	if err := c.BindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}

	media, err := h.service.UpdateMedia(ctx, &content.UpdateMediaInput{
		ID:           id,
		URL:          req.URL,
		Filename:     req.Filename,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		AltText:      req.AltText,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		if errors.Is(err, content.ErrMediaNotFound) {
			writeNotFound(c, err)
			return
		}
		writeBadRequest(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{"media": media},
	})
}

// DeleteMedia removes the record, its comments, and any stored file.
func (h *MediaHandler) DeleteMedia(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	if err := h.service.DeleteMedia(ctx, id); err != nil {
		if errors.Is(err, content.ErrMediaNotFound) {
			writeNotFound(c, err)
			return
		}
		writeInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{}.ReturnOK())
}

// UploadThumbnail stores a preview image and persists its URL on the record.
func (h *MediaHandler) UploadThumbnail(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeInternalError(c, err)
		return
	}

	media, err := h.service.UploadThumbnail(ctx, id, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, content.ErrMediaNotFound) {
			writeNotFound(c, err)
			return
		}
		writeBadRequest(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{"media": media},
	})
}
