package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"agri-works/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const productColumns = `id, name, description, price, category, status, image_url, images, build_type, capacity, created_at`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// productRow mirrors a products row. Price stays a decimal until it is
// mapped onto the model.
type productRow struct {
	ID          string
	Name        string
	Description *string
	Price       decimal.Decimal
	Category    string
	Status      string
	ImageURL    *string
	Images      []string
	BuildType   *string
	Capacity    *string
	CreatedAt   time.Time
}

func (row *productRow) scanTargets() []any {
	return []any{
		&row.ID, &row.Name, &row.Description, &row.Price, &row.Category, &row.Status,
		&row.ImageURL, &row.Images, &row.BuildType, &row.Capacity, &row.CreatedAt,
	}
}

func (row *productRow) toModel() model.Product {
	p := model.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price.InexactFloat64(),
		Category:    model.Category(row.Category),
		Status:      model.ProductStatus(row.Status),
		ImageURL:    row.ImageURL,
		Images:      row.Images,
		CreatedAt:   row.CreatedAt,
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if row.BuildType != nil {
		bt := model.BuildType(*row.BuildType)
		p.BuildType = &bt
	}
	if row.Capacity != nil {
		c := model.Capacity(*row.Capacity)
		p.Capacity = &c
	}
	return p
}

// List retrieves every product, newest first.
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var row productRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, row.toModel())
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var row productRow
	err := r.pool.QueryRow(ctx, query, id).Scan(row.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	p := row.toModel()
	return &p, nil
}

// Create inserts a new product and returns the stored record.
func (r *productRepository) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	query := `
		INSERT INTO products (id, name, description, price, category, status, image_url, images, build_type, capacity)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6::text, 'Active'), $7, $8, $9, $10)
		RETURNING ` + productColumns

	images := input.Images
	if images == nil {
		images = []string{}
	}

	var row productRow
	err := r.pool.QueryRow(ctx, query,
		uuid.NewString(),
		input.Name,
		nullable(input.Description),
		decimal.NewFromFloat(input.Price),
		string(input.Category),
		nullable(string(input.Status)),
		nullable(input.ImageURL),
		images,
		nullable(string(input.BuildType)),
		nullable(string(input.Capacity)),
	).Scan(row.scanTargets()...)
	if err != nil {
		r.logger.Error().Err(err).Str("name", input.Name).Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	p := row.toModel()
	r.logger.Info().Str("product_id", p.ID).Msg("product created")
	return &p, nil
}

// Update applies the supplied fields of patch to the product in a single
// statement. An empty patch returns the current record unchanged.
func (r *productRepository) Update(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error) {
	if patch.Empty() {
		p, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, model.ErrProductNotFound
		}
		return p, nil
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Description != nil {
		set("description", nullable(*patch.Description))
	}
	if patch.Price != nil {
		set("price", decimal.NewFromFloat(*patch.Price))
	}
	if patch.Category != nil {
		set("category", string(*patch.Category))
	}
	if patch.Status != nil {
		set("status", string(*patch.Status))
	}
	if patch.ImageURL != nil {
		set("image_url", nullable(*patch.ImageURL))
	}
	if patch.Images != nil {
		images := *patch.Images
		if images == nil {
			images = []string{}
		}
		set("images", images)
	}
	if patch.BuildType != nil {
		set("build_type", nullable(string(*patch.BuildType)))
	}
	if patch.Capacity != nil {
		set("capacity", nullable(string(*patch.Capacity)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE products SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), productColumns)

	var row productRow
	err := r.pool.QueryRow(ctx, query, args...).Scan(row.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("product_id", id).Msg("product not found for update")
			return nil, model.ErrProductNotFound
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	p := row.toModel()
	r.logger.Info().Str("product_id", id).Int("fields", len(sets)).Msg("product updated")
	return &p, nil
}

// Delete permanently removes the product.
func (r *productRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("product_id", id).Msg("product not found for delete")
		return model.ErrProductNotFound
	}

	r.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// nullable maps the empty string to SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
