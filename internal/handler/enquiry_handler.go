package handler

import (
	"errors"
	"fmt"
	"net/http"

	"agri-works/internal/model"
	"agri-works/internal/service"

	"github.com/rs/zerolog"
)

// EnquiryHandler handles enquiry-related HTTP requests.
type EnquiryHandler struct {
	service service.EnquiryService
	logger  zerolog.Logger
}

// NewEnquiryHandler creates a new enquiry handler.
func NewEnquiryHandler(service service.EnquiryService, logger zerolog.Logger) *EnquiryHandler {
	return &EnquiryHandler{
		service: service,
		logger:  logger.With().Str("handler", "enquiry").Logger(),
	}
}

// Create handles POST /api/enquiries requests from the contact and callback
// forms.
func (h *EnquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.EnquiryInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeValidationError(w, err, h.logger)
		return
	}
	if err := input.Validate(); err != nil {
		writeValidationError(w, err, h.logger)
		return
	}

	enquiry := h.service.Create(r.Context(), input)
	if enquiry == nil {
		writeError(w, http.StatusInternalServerError, "Failed to submit enquiry", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, enquiry)
}

// List handles GET /api/admin/enquiries requests.
func (h *EnquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.List(r.Context()))
}

// UpdateStatus handles PATCH /api/admin/enquiries/{id} requests. Only the
// selector values are accepted here.
func (h *EnquiryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	enquiryID := r.PathValue("id")
	if enquiryID == "" {
		writeError(w, http.StatusBadRequest, "enquiry ID is required", h.logger)
		return
	}

	var update model.EnquiryStatusUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeValidationError(w, err, h.logger)
		return
	}
	if !update.Status.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown status %q", update.Status), h.logger)
		return
	}

	enquiry, err := h.service.UpdateStatus(r.Context(), enquiryID, update.Status)
	if err != nil {
		if errors.Is(err, model.ErrEnquiryNotFound) {
			writeError(w, http.StatusNotFound, "enquiry not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update enquiry", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, enquiry)
}
