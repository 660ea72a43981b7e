package handler

import (
	"net/http"

	"agri-works/internal/catalog"
	"agri-works/internal/model"
	"agri-works/internal/service"

	"github.com/rs/zerolog"
)

// CatalogResponse is the filtered public catalogue.
type CatalogResponse struct {
	Products []catalog.Listing `json:"products"`
	Total    int               `json:"total"`
	Empty    bool              `json:"empty"`
}

// CatalogHandler serves the public catalogue and gallery read models.
type CatalogHandler struct {
	products service.ProductService
	logger   zerolog.Logger
}

// NewCatalogHandler creates a new catalogue handler.
func NewCatalogHandler(products service.ProductService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		products: products,
		logger:   logger.With().Str("handler", "catalog").Logger(),
	}
}

// Catalog handles GET /api/catalog?q=&category=&buildType=&capacity=
// requests. Facet parameters may be repeated.
func (h *CatalogHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	criteria := catalog.Criteria{
		Query:      query.Get("q"),
		Categories: convertAll[model.Category](query["category"]),
		BuildTypes: convertAll[model.BuildType](query["buildType"]),
		Capacities: convertAll[model.Capacity](query["capacity"]),
	}

	listings := catalog.Filter(h.products.List(r.Context()), criteria)

	h.logger.Debug().
		Str("query", criteria.Query).
		Int("matches", len(listings)).
		Msg("catalog filtered")

	writeJSON(w, http.StatusOK, CatalogResponse{
		Products: listings,
		Total:    len(listings),
		Empty:    len(listings) == 0,
	})
}

// Gallery handles GET /api/gallery?category= requests.
func (h *CatalogHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	category := model.Category(r.URL.Query().Get("category"))
	writeJSON(w, http.StatusOK, catalog.BuildGallery(h.products.List(r.Context()), category))
}

func convertAll[T ~string](values []string) []T {
	if len(values) == 0 {
		return nil
	}
	out := make([]T, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, T(v))
		}
	}
	return out
}
