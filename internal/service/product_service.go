package service

import (
	"context"
	"errors"
	"fmt"

	"agri-works/internal/cache"
	"agri-works/internal/model"
	"agri-works/internal/repository"

	"github.com/rs/zerolog"
)

const (
	msgCreateProductFailed = "Failed to create product"
	msgUpdateProductFailed = "Failed to update product"
	msgDeleteProductFailed = "Failed to delete product"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	routes      cache.RouteCache
	logger      zerolog.Logger
}

// NewProductService creates a new product service. Successful mutations
// invalidate the cached catalogue routes.
func NewProductService(productRepo repository.ProductRepository, routes cache.RouteCache, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		routes:      routes,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves every product, newest first.
func (s *productService) List(ctx context.Context) []model.Product {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return []model.Product{}
	}
	if products == nil {
		return []model.Product{}
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")
	return products
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create stores a new product. Fields are not validated here.
func (s *productService) Create(ctx context.Context, input model.ProductInput) model.MutationResult {
	if input.Status == "" {
		input.Status = model.StatusActive
	}
	if input.Images == nil {
		input.Images = []string{}
	}

	product, err := s.productRepo.Create(ctx, input)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return model.MutationResult{Error: msgCreateProductFailed}
	}

	s.routes.Invalidate(cache.ProductRoutes...)
	s.logger.Info().Str("product_id", product.ID).Msg("product created")

	return model.MutationResult{Success: true, Data: product}
}

// Update applies the supplied fields of patch.
func (s *productService) Update(ctx context.Context, id string, patch model.ProductPatch) model.MutationResult {
	product, err := s.productRepo.Update(ctx, id, patch)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return model.MutationResult{
			Error:    msgUpdateProductFailed,
			NotFound: errors.Is(err, model.ErrProductNotFound),
		}
	}

	s.routes.Invalidate(cache.ProductRoutes...)
	s.logger.Info().Str("product_id", id).Msg("product updated")

	return model.MutationResult{Success: true, Data: product}
}

// Delete permanently removes a product.
func (s *productService) Delete(ctx context.Context, id string) model.MutationResult {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return model.MutationResult{
			Error:    msgDeleteProductFailed,
			NotFound: errors.Is(err, model.ErrProductNotFound),
		}
	}

	s.routes.Invalidate(cache.ProductRoutes...)
	s.logger.Info().Str("product_id", id).Msg("product deleted")

	return model.MutationResult{Success: true}
}
