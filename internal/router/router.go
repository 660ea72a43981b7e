package router

import (
	"net/http"

	"agri-works/internal/cache"
	"agri-works/internal/handler"
	"agri-works/internal/metrics"
	"agri-works/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	Product *handler.ProductHandler
	Catalog *handler.CatalogHandler
	Enquiry *handler.EnquiryHandler
	Admin   *handler.AdminHandler
	Upload  *handler.UploadHandler
}

// Deps are the shared components the routes are wrapped with.
type Deps struct {
	Auth    middleware.TokenValidator
	Cache   cache.RouteCache
	Metrics *metrics.Metrics
	Logger  zerolog.Logger
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, deps Deps) http.Handler {
	mux := http.NewServeMux()
	logger := deps.Logger

	cached := func(route string, fn http.HandlerFunc) http.Handler {
		return middleware.RouteCache(deps.Cache, route, deps.Metrics, logger)(fn)
	}
	requireAdmin := middleware.AdminAuth(deps.Auth, logger)

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})
	mux.Handle("GET /metrics", deps.Metrics.Handler())

	// Public site
	mux.Handle("GET /api/products", cached(cache.RouteProducts, h.Product.List))
	mux.Handle("GET /api/products/{id}", cached(cache.RouteProducts, h.Product.GetByID))
	mux.Handle("GET /api/catalog", cached(cache.RouteProducts, h.Catalog.Catalog))
	mux.Handle("GET /api/gallery", cached(cache.RouteGallery, h.Catalog.Gallery))
	mux.HandleFunc("POST /api/enquiries", h.Enquiry.Create)
	mux.HandleFunc("POST /api/admin/login", h.Admin.Login)

	// Admin back-office. Authentication runs before the cache so a cached
	// admin page is never served to an anonymous caller.
	mux.Handle("GET /api/admin/dashboard", requireAdmin(cached(cache.RouteAdmin, h.Admin.Dashboard)))
	mux.Handle("GET /api/admin/products", requireAdmin(cached(cache.RouteAdminProducts, h.Product.List)))
	mux.Handle("POST /api/admin/products", requireAdmin(http.HandlerFunc(h.Product.Create)))
	mux.Handle("PATCH /api/admin/products/{id}", requireAdmin(http.HandlerFunc(h.Product.Update)))
	mux.Handle("PUT /api/admin/products/{id}", requireAdmin(http.HandlerFunc(h.Product.Update)))
	mux.Handle("DELETE /api/admin/products/{id}", requireAdmin(http.HandlerFunc(h.Product.Delete)))
	mux.Handle("GET /api/admin/enquiries", requireAdmin(cached(cache.RouteAdminEnquiries, h.Enquiry.List)))
	mux.Handle("PATCH /api/admin/enquiries/{id}", requireAdmin(http.HandlerFunc(h.Enquiry.UpdateStatus)))
	mux.Handle("POST /api/upload", requireAdmin(http.HandlerFunc(h.Upload.Upload)))

	// Apply middleware in order: Recovery -> Logging -> CORS -> Metrics
	var handler http.Handler = mux
	handler = middleware.Metrics(deps.Metrics)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
