package storage

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"agri-works/internal/model"

	"github.com/stretchr/testify/assert"
)

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
)

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		data     []byte
		expected string
	}{
		{name: "Declared type wins", declared: "image/webp", data: pngHeader, expected: "image/webp"},
		{name: "Parameters are dropped", declared: "Image/PNG; charset=binary", data: nil, expected: "image/png"},
		{name: "Missing type is sniffed", declared: "", data: pngHeader, expected: "image/png"},
		{name: "Octet stream is sniffed", declared: "application/octet-stream", data: jpegHeader, expected: "image/jpeg"},
		{name: "Unknown bytes", declared: "", data: []byte("hello"), expected: "text/plain; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectContentType(tt.declared, tt.data))
		})
	}
}

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		err         error
	}{
		{name: "JPEG", contentType: "image/jpeg", size: 1024},
		{name: "PNG at the limit", contentType: "image/png", size: MaxImageSize},
		{name: "WebP", contentType: "image/webp", size: 1},
		{name: "GIF", contentType: "image/gif", size: 1024, err: model.ErrInvalidFileType},
		{name: "PDF", contentType: "application/pdf", size: 1024, err: model.ErrInvalidFileType},
		{name: "15 MB JPEG", contentType: "image/jpeg", size: 15 << 20, err: model.ErrFileTooLarge},
		{name: "One byte over", contentType: "image/png", size: MaxImageSize + 1, err: model.ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImage(tt.contentType, tt.size)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNewKey(t *testing.T) {
	now := time.UnixMilli(1717171717171)
	keyPattern := regexp.MustCompile(`^product-images/1717171717171-[0-9a-z]{16}\.(\w+)$`)

	tests := []struct {
		name     string
		filename string
		ext      string
	}{
		{name: "Keeps extension", filename: "tractor.png", ext: "png"},
		{name: "Lower-cases extension", filename: "IMG_001.JPEG", ext: "jpeg"},
		{name: "Defaults to jpg", filename: "blob", ext: "jpg"},
		{name: "Keeps webp", filename: "harvester.WebP", ext: "webp"},
		{name: "Replaces script extension", filename: "shell.php", ext: "jpg"},
		{name: "Replaces markup extension", filename: "index.html", ext: "jpg"},
		{name: "Replaces oversized extension", filename: "a." + strings.Repeat("x", 300), ext: "jpg"},
		{name: "Ignores path in extension", filename: "photo.png/../../etc", ext: "jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewKey("product-images/", tt.filename, now)
			m := keyPattern.FindStringSubmatch(key)
			if assert.NotNil(t, m, key) {
				assert.Equal(t, tt.ext, m[1])
			}
		})
	}

	t.Run("Keys do not collide", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			key := NewKey("p/", "a.png", now)
			assert.False(t, seen[key])
			seen[key] = true
		}
	})
}

func TestDetectContentType_LargeBuffer(t *testing.T) {
	data := append(bytes.Clone(pngHeader), make([]byte, 2<<20)...)
	assert.Equal(t, "image/png", DetectContentType("", data))
}
