package service

import (
	"context"

	"agri-works/internal/model"
)

// ProductService defines the catalog read and mutation operations.
type ProductService interface {
	// List retrieves every product, newest first. Returns an empty slice
	// when the store cannot be read.
	List(ctx context.Context) []model.Product

	// GetByID retrieves a single product. Returns model.ErrProductNotFound
	// when it does not exist.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create stores a new product with default status and images applied.
	Create(ctx context.Context, input model.ProductInput) model.MutationResult

	// Update applies the supplied fields of patch.
	Update(ctx context.Context, id string, patch model.ProductPatch) model.MutationResult

	// Delete permanently removes a product.
	Delete(ctx context.Context, id string) model.MutationResult
}

// EnquiryService defines the enquiry inbox operations.
type EnquiryService interface {
	// List retrieves every enquiry, newest first. Returns an empty slice
	// when the store cannot be read.
	List(ctx context.Context) []model.Enquiry

	// Create stores a submitted enquiry. Returns nil on failure.
	Create(ctx context.Context, input model.EnquiryInput) *model.Enquiry

	// UpdateStatus overwrites the status of an enquiry. Returns
	// model.ErrEnquiryNotFound when the enquiry does not exist.
	UpdateStatus(ctx context.Context, id string, status model.EnquiryStatus) (*model.Enquiry, error)
}

// DashboardService summarises the admin overview.
type DashboardService interface {
	// Stats counts products and enquiries.
	Stats(ctx context.Context) model.DashboardStats
}
