package handler

import (
	"errors"
	"net/http"

	"agri-works/internal/catalog"
	"agri-works/internal/model"
	"agri-works/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products and GET /api/admin/products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.List(r.Context()))
}

// GetByID handles GET /api/products/{id} requests. The response carries the
// effective tags and primary image.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, catalog.NewListing(*product))
}

// Create handles POST /api/admin/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.ProductInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeValidationError(w, err, h.logger)
		return
	}
	if err := input.Validate(); err != nil {
		writeValidationError(w, err, h.logger)
		return
	}

	h.writeResult(w, h.service.Create(r.Context(), input), http.StatusCreated)
}

// Update handles PATCH and PUT /api/admin/products/{id} requests. Only the
// fields present in the body are changed.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	var patch model.ProductPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeValidationError(w, err, h.logger)
		return
	}
	if err := patch.Validate(); err != nil {
		writeValidationError(w, err, h.logger)
		return
	}

	h.writeResult(w, h.service.Update(r.Context(), productID, patch), http.StatusOK)
}

// Delete handles DELETE /api/admin/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	h.writeResult(w, h.service.Delete(r.Context(), productID), http.StatusOK)
}

func (h *ProductHandler) writeResult(w http.ResponseWriter, result model.MutationResult, successStatus int) {
	switch {
	case result.Success:
		writeJSON(w, successStatus, result)
	case result.NotFound:
		h.logger.Warn().Str("error", result.Error).Msg("product not found")
		writeJSON(w, http.StatusNotFound, result)
	default:
		h.logger.Error().Str("error", result.Error).Msg("product mutation failed")
		writeJSON(w, http.StatusInternalServerError, result)
	}
}
