// Package storage writes product images to S3-compatible object storage.
package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"agri-works/internal/model"

	"github.com/gabriel-vasile/mimetype"
	"github.com/oklog/ulid/v2"
)

// MaxImageSize is the largest accepted upload, in bytes.
const MaxImageSize = 10 << 20

const defaultExtension = "jpg"

var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// DetectContentType returns the declared type of an upload, or the sniffed
// type when the client sent none.
func DetectContentType(declared string, data []byte) string {
	declared = strings.ToLower(strings.TrimSpace(declared))
	if i := strings.IndexByte(declared, ';'); i >= 0 {
		declared = strings.TrimSpace(declared[:i])
	}
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return mimetype.Detect(data).String()
}

// ValidateImage checks the type and size limits for product images.
func ValidateImage(contentType string, size int64) error {
	if !allowedImageTypes[contentType] {
		return model.ErrInvalidFileType
	}
	if size > MaxImageSize {
		return model.ErrFileTooLarge
	}
	return nil
}

// NewKey builds a collision-resistant object key from the upload time, a
// random suffix and the original file extension. Extensions other than the
// image ones fall back to jpg.
func NewKey(prefix, filename string, now time.Time) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !allowedExtensions[ext] {
		ext = defaultExtension
	}

	id := ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy())
	// The first 10 characters encode the timestamp, the rest is entropy.
	suffix := strings.ToLower(id.String()[10:])

	return fmt.Sprintf("%s%d-%s.%s", prefix, now.UnixMilli(), suffix, ext)
}
