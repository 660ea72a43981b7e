package repository

import (
	"context"

	"agri-works/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves every product, newest first.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	// Returns nil, nil when the product does not exist.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create inserts a new product and returns the stored record.
	Create(ctx context.Context, input model.ProductInput) (*model.Product, error)

	// Update applies the supplied fields of patch to the product.
	// Returns model.ErrProductNotFound when the product does not exist.
	Update(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error)

	// Delete permanently removes the product.
	// Returns model.ErrProductNotFound when the product does not exist.
	Delete(ctx context.Context, id string) error
}

// EnquiryRepository defines the interface for enquiry data access operations.
type EnquiryRepository interface {
	// List retrieves every enquiry, newest first.
	List(ctx context.Context) ([]model.Enquiry, error)

	// Create inserts a new enquiry and returns the stored record.
	Create(ctx context.Context, enquiry model.Enquiry) (*model.Enquiry, error)

	// UpdateStatus overwrites the status of an enquiry.
	// Returns model.ErrEnquiryNotFound when the enquiry does not exist.
	UpdateStatus(ctx context.Context, id string, status model.EnquiryStatus) (*model.Enquiry, error)
}
