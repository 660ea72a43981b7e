package model

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category is the equipment family a product is listed under.
type Category string

const (
	CategoryTrolleys    Category = "Trolleys"
	CategoryCultivators Category = "Cultivators"
	CategoryRotavators  Category = "Rotavators"
	CategoryPloughs     Category = "Ploughs"
	CategoryHarvesters  Category = "Harvesters"
	CategorySeedDrills  Category = "Seed Drills"
	CategoryOther       Category = "Other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryTrolleys,
	CategoryCultivators,
	CategoryRotavators,
	CategoryPloughs,
	CategoryHarvesters,
	CategorySeedDrills,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ProductStatus is the sales status of a product.
type ProductStatus string

const (
	StatusActive       ProductStatus = "Active"
	StatusOutOfStock   ProductStatus = "Out of Stock"
	StatusDiscontinued ProductStatus = "Discontinued"
)

// ProductStatuses lists every product status.
var ProductStatuses = []ProductStatus{StatusActive, StatusOutOfStock, StatusDiscontinued}

// Valid reports whether s is one of the known statuses.
func (s ProductStatus) Valid() bool {
	for _, known := range ProductStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// BuildType describes how a machine is built.
type BuildType string

const (
	BuildHydraulic  BuildType = "Hydraulic"
	BuildMechanical BuildType = "Mechanical"
	BuildHeavyDuty  BuildType = "Heavy Duty"
)

// BuildTypes lists every build type.
var BuildTypes = []BuildType{BuildHydraulic, BuildMechanical, BuildHeavyDuty}

// Valid reports whether b is one of the known build types.
func (b BuildType) Valid() bool {
	for _, known := range BuildTypes {
		if b == known {
			return true
		}
	}
	return false
}

// Capacity is the load class of a machine.
type Capacity string

const (
	CapacityUnder5 Capacity = "Under 5 Tons"
	Capacity5To10  Capacity = "5-10 Tons"
	CapacityOver10 Capacity = "10+ Tons"
)

// Capacities lists every capacity range.
var Capacities = []Capacity{CapacityUnder5, Capacity5To10, CapacityOver10}

// Valid reports whether c is one of the known capacity ranges.
func (c Capacity) Valid() bool {
	for _, known := range Capacities {
		if c == known {
			return true
		}
	}
	return false
}

// Product represents a piece of equipment in the catalogue.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	Price       float64       `json:"price"`
	Category    Category      `json:"category"`
	Status      ProductStatus `json:"status"`
	ImageURL    *string       `json:"imageUrl"`
	Images      []string      `json:"images"`
	BuildType   *BuildType    `json:"buildType"`
	Capacity    *Capacity     `json:"capacity"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// PrimaryImage returns the image shown first for the product: the explicit
// image URL when set, otherwise the first gallery image.
func (p *Product) PrimaryImage() string {
	if p.ImageURL != nil && *p.ImageURL != "" {
		return *p.ImageURL
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// ProductInput is the payload of the "add product" form.
type ProductInput struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Price       float64       `json:"price"`
	Category    Category      `json:"category"`
	Status      ProductStatus `json:"status,omitempty"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	Images      []string      `json:"images,omitempty"`
	BuildType   BuildType     `json:"buildType,omitempty"`
	Capacity    Capacity      `json:"capacity,omitempty"`
}

// Validate applies the form rules of the admin product editor.
func (in *ProductInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewDomainError(ErrCodeMissingField, "name is required")
	}
	if err := validatePrice(in.Price); err != nil {
		return err
	}
	if !in.Category.Valid() {
		return NewDomainError(ErrCodeInvalidField, fmt.Sprintf("unknown category %q", in.Category))
	}
	if in.Status != "" && !in.Status.Valid() {
		return NewDomainError(ErrCodeInvalidField, fmt.Sprintf("unknown status %q", in.Status))
	}
	if in.BuildType != "" && !in.BuildType.Valid() {
		return NewDomainError(ErrCodeInvalidField, fmt.Sprintf("unknown build type %q", in.BuildType))
	}
	if in.Capacity != "" && !in.Capacity.Valid() {
		return NewDomainError(ErrCodeInvalidField, fmt.Sprintf("unknown capacity %q", in.Capacity))
	}
	return nil
}

// maxPrice is the smallest price the catalogue column cannot hold.
var maxPrice = decimal.New(1, 10)

// validatePrice accepts prices that are stored exactly: positive, at most
// two decimal places and below maxPrice.
func validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return NewDomainError(ErrCodeInvalidField, "price must be greater than zero")
	}
	d := decimal.NewFromFloat(price)
	if d.Exponent() < -2 {
		return NewDomainError(ErrCodeInvalidField, "price must have at most two decimal places")
	}
	if d.GreaterThanOrEqual(maxPrice) {
		return NewDomainError(ErrCodeInvalidField, "price must be less than 10000000000")
	}
	return nil
}

// ProductPatch carries the fields of an edit. Nil fields are left untouched.
// An empty string for description, imageUrl, buildType or capacity clears
// the stored value.
type ProductPatch struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Price       *float64       `json:"price,omitempty"`
	Category    *Category      `json:"category,omitempty"`
	Status      *ProductStatus `json:"status,omitempty"`
	ImageURL    *string        `json:"imageUrl,omitempty"`
	Images      *[]string      `json:"images,omitempty"`
	BuildType   *BuildType     `json:"buildType,omitempty"`
	Capacity    *Capacity      `json:"capacity,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p *ProductPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.Category == nil && p.Status == nil && p.ImageURL == nil &&
		p.Images == nil && p.BuildType == nil && p.Capacity == nil
}

// Validate applies the edit form rules to the supplied fields only.
func (p *ProductPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return NewDomainError(ErrCodeMissingField, "name cannot be empty")
	}
	if p.Price != nil {
		if err := validatePrice(*p.Price); err != nil {
			return err
		}
	}
	if p.Category != nil && !p.Category.Valid() {
		return NewDomainError(ErrCodeInvalidField, fmt.Sprintf("unknown category %q", *p.Category))
	}
	if p.Status != nil && !p.Status.Valid() {
		return NewDomainError(ErrCodeInvalidField, fmt.Sprintf("unknown status %q", *p.Status))
	}
	if p.BuildType != nil && *p.BuildType != "" && !p.BuildType.Valid() {
		return NewDomainError(ErrCodeInvalidField, fmt.Sprintf("unknown build type %q", *p.BuildType))
	}
	if p.Capacity != nil && *p.Capacity != "" && !p.Capacity.Valid() {
		return NewDomainError(ErrCodeInvalidField, fmt.Sprintf("unknown capacity %q", *p.Capacity))
	}
	return nil
}

// MutationResult is the tagged outcome of a catalog mutation. Failures carry
// a generic message only; NotFound lets the HTTP layer answer 404.
type MutationResult struct {
	Success  bool     `json:"success"`
	Data     *Product `json:"data,omitempty"`
	Error    string   `json:"error,omitempty"`
	NotFound bool     `json:"-"`
}
