// Package cache stores rendered GET responses grouped by route so that a
// mutation can discard every variant of a route at once.
package cache

import (
	"context"
	"net/url"
)

// Routes whose rendered output is cached.
const (
	RouteProducts       = "/products"
	RouteGallery        = "/gallery"
	RouteAdmin          = "/admin"
	RouteAdminProducts  = "/admin/products"
	RouteAdminEnquiries = "/admin/enquiries"
)

// ProductRoutes are discarded after any product mutation.
var ProductRoutes = []string{RouteAdminProducts, RouteProducts, RouteGallery, RouteAdmin}

// EnquiryRoutes are discarded after any enquiry mutation.
var EnquiryRoutes = []string{RouteAdminEnquiries, RouteAdmin}

// Entry is a cached response body.
type Entry struct {
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// RouteCache holds response variants per route. Every route carries a
// generation that Invalidate advances; a response rendered under an older
// generation is never stored.
type RouteCache interface {
	// Get returns the cached variant of route, or nil on a miss, together
	// with the route's current generation.
	Get(ctx context.Context, route, variant string) (*Entry, uint64, error)

	// Set stores a variant of route rendered at generation. It is dropped
	// when the route has been invalidated since.
	Set(ctx context.Context, route, variant string, generation uint64, entry Entry) error

	// Invalidate discards every variant of the given routes. It does not
	// wait for the removal to complete.
	Invalidate(routes ...string)
}

// VariantKey identifies a response variant by path and query. Query
// parameters are sorted so equivalent URLs share an entry.
func VariantKey(u *url.URL) string {
	query := u.Query().Encode()
	if query == "" {
		return u.Path
	}
	return u.Path + "?" + query
}
