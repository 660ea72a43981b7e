package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"agri-works/internal/model"
	"agri-works/internal/storage"

	"github.com/rs/zerolog"
)

const (
	uploadField = "file"
	// multipartOverhead leaves room for boundaries and part headers on top
	// of the largest accepted file.
	multipartOverhead = 1 << 20
	maxUploadBody     = storage.MaxImageSize + multipartOverhead
)

// UploadResponse carries the public URL of a stored image.
type UploadResponse struct {
	URL string `json:"url"`
}

// UploadHandler accepts product images and writes them to object storage.
type UploadHandler struct {
	store  storage.ImageStore
	now    func() time.Time
	logger zerolog.Logger
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(store storage.ImageStore, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		store:  store,
		now:    time.Now,
		logger: logger.With().Str("handler", "upload").Logger(),
	}
}

// Upload handles POST /api/upload requests with a single multipart "file"
// field. The write is a single attempt.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > maxUploadBody {
		writeError(w, http.StatusBadRequest, model.ErrFileTooLarge.Message, h.logger)
		return
	}
	// Chunked bodies have no declared length; cap them while parsing.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)

	if err := r.ParseMultipartForm(maxUploadBody); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusBadRequest, model.ErrFileTooLarge.Message, h.logger)
			return
		}
		writeError(w, http.StatusBadRequest, "No file provided", h.logger)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided", h.logger)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read file", h.logger)
		return
	}

	contentType := storage.DetectContentType(header.Header.Get("Content-Type"), data)
	if err := storage.ValidateImage(contentType, int64(len(data))); err != nil {
		writeValidationError(w, err, h.logger)
		return
	}

	key := storage.NewKey(h.store.Prefix(), header.Filename, h.now())
	url, err := h.store.Put(r.Context(), key, contentType, data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to upload image", h.logger)
		return
	}

	h.logger.Info().
		Str("key", key).
		Str("content_type", contentType).
		Int("bytes", len(data)).
		Msg("image uploaded")

	writeJSON(w, http.StatusOK, UploadResponse{URL: url})
}
