// Package catalog holds the read-side rules of the public catalogue: the
// build type and capacity classifier, the facet filter and the gallery
// aggregation. Everything here is pure and recomputed on every read.
package catalog

import (
	"strings"

	"agri-works/internal/model"
)

// Price thresholds used to guess a capacity range when none is stored.
const (
	midCapacityPrice   = 200000
	heavyCapacityPrice = 400000
)

// Tags is the build type and capacity of a product.
type Tags struct {
	BuildType model.BuildType `json:"buildType"`
	Capacity  model.Capacity  `json:"capacity"`
}

// DeriveTags guesses tags from the product name and price. It is a keyword
// heuristic and may change if a product is renamed or repriced.
func DeriveTags(p model.Product) Tags {
	name := strings.ToLower(p.Name)

	buildType := model.BuildMechanical
	if strings.Contains(name, "hydraulic") {
		buildType = model.BuildHydraulic
	}
	if strings.Contains(name, "heavy") {
		buildType = model.BuildHeavyDuty
	}

	capacity := model.CapacityUnder5
	if p.Price > midCapacityPrice {
		capacity = model.Capacity5To10
	}
	if p.Price > heavyCapacityPrice {
		capacity = model.CapacityOver10
	}

	return Tags{BuildType: buildType, Capacity: capacity}
}

// EffectiveTags returns the stored tags, filling whichever is missing from
// DeriveTags.
func EffectiveTags(p model.Product) Tags {
	tags := DeriveTags(p)
	if p.BuildType != nil && *p.BuildType != "" {
		tags.BuildType = *p.BuildType
	}
	if p.Capacity != nil && *p.Capacity != "" {
		tags.Capacity = *p.Capacity
	}
	return tags
}
