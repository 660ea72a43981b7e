package catalog

import (
	"strings"

	"agri-works/internal/model"
)

// Criteria selects products from the public catalogue. Values within a
// facet are alternatives; facets are combined with AND. Empty facets match
// everything.
type Criteria struct {
	Query      string
	Categories []model.Category
	BuildTypes []model.BuildType
	Capacities []model.Capacity
}

// Listing is a product as the catalogue shows it, with effective tags and
// primary image resolved.
type Listing struct {
	model.Product
	BuildType    model.BuildType `json:"buildType"`
	Capacity     model.Capacity  `json:"capacity"`
	PrimaryImage string          `json:"primaryImage"`
}

// NewListing resolves the effective tags and primary image of p.
func NewListing(p model.Product) Listing {
	tags := EffectiveTags(p)
	return Listing{
		Product:      p,
		BuildType:    tags.BuildType,
		Capacity:     tags.Capacity,
		PrimaryImage: p.PrimaryImage(),
	}
}

// Filter returns the active products matching c, in input order. An empty
// result is a valid outcome.
func Filter(products []model.Product, c Criteria) []Listing {
	query := strings.ToLower(strings.TrimSpace(c.Query))

	result := []Listing{}
	for _, p := range products {
		if p.Status != model.StatusActive {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if !matchAny(c.Categories, p.Category) {
			continue
		}

		listing := NewListing(p)
		if !matchAny(c.BuildTypes, listing.BuildType) {
			continue
		}
		if !matchAny(c.Capacities, listing.Capacity) {
			continue
		}
		result = append(result, listing)
	}
	return result
}

func matchAny[T comparable](allowed []T, v T) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}
