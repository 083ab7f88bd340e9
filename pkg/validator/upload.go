package validator

import (
	"errors"
	"net/http"
)

// Default upload constraints
const (
	DefaultMaxUploadSize = 10 * 1024 * 1024 // 10MB
)

// DefaultAllowedMimeTypes contains the default whitelist of allowed MIME
// types for uploads: images for thumbnails and covers, plus the uploaded
// video formats the site lists.
var DefaultAllowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"video/mp4":       true,
	"video/x-msvideo": true,
	"video/quicktime": true,
	"video/x-ms-wmv":  true,
	"video/x-flv":     true,
	"video/webm":      true,
}

// ImageMimeTypes is the subset of allowed types accepted for thumbnails.
var ImageMimeTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// UploadConfig defines constraints for file uploads.
type UploadConfig struct {
	MaxFileSize      int64
	AllowedMimeTypes map[string]bool
}

// DefaultUploadConfig returns the default upload configuration.
func DefaultUploadConfig() *UploadConfig {
	return &UploadConfig{
		MaxFileSize:      DefaultMaxUploadSize,
		AllowedMimeTypes: DefaultAllowedMimeTypes,
	}
}

// ValidateFileSize checks if the file size is within the allowed limit.
func (c *UploadConfig) ValidateFileSize(size int64) error {
	if size <= 0 {
		return errors.New("file is empty")
	}
	if size > c.MaxFileSize {
		return errors.New("file too large")
	}
	return nil
}

// ValidateMimeType checks the declared content type against the whitelist,
// falling back to content sniffing when the declaration is missing.
func (c *UploadConfig) ValidateMimeType(contentType string, head []byte) error {
	if contentType == "" && len(head) > 0 {
		contentType = http.DetectContentType(head)
	}
	if contentType == "" {
		return errors.New("content type is required")
	}
	if !c.AllowedMimeTypes[contentType] {
		return errors.New("content type not allowed: " + contentType)
	}
	return nil
}

// ValidateImage checks that the content type is an accepted image format.
func ValidateImage(contentType string, head []byte) error {
	if contentType == "" && len(head) > 0 {
		contentType = http.DetectContentType(head)
	}
	if !ImageMimeTypes[contentType] {
		return errors.New("thumbnail must be an image, got: " + contentType)
	}
	return nil
}
