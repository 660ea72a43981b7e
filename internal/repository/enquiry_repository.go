package repository

import (
	"context"
	"errors"
	"fmt"

	"agri-works/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const enquiryColumns = `id, name, email, message, status, created_at`

// enquiryRepository implements the EnquiryRepository interface using PostgreSQL.
type enquiryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewEnquiryRepository creates a new PostgreSQL-backed enquiry repository.
func NewEnquiryRepository(pool *pgxpool.Pool, logger zerolog.Logger) EnquiryRepository {
	return &enquiryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "enquiry").Logger(),
	}
}

func scanEnquiry(row pgx.Row) (*model.Enquiry, error) {
	var (
		e      model.Enquiry
		status string
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Message, &status, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Status = model.EnquiryStatus(status)
	return &e, nil
}

// List retrieves every enquiry, newest first.
func (r *enquiryRepository) List(ctx context.Context) ([]model.Enquiry, error) {
	query := `SELECT ` + enquiryColumns + ` FROM enquiries ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query enquiries")
		return nil, fmt.Errorf("failed to query enquiries: %w", err)
	}
	defer rows.Close()

	enquiries := []model.Enquiry{}
	for rows.Next() {
		e, err := scanEnquiry(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan enquiry row")
			return nil, fmt.Errorf("failed to scan enquiry: %w", err)
		}
		enquiries = append(enquiries, *e)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating enquiry rows")
		return nil, fmt.Errorf("error iterating enquiries: %w", err)
	}

	return enquiries, nil
}

// Create inserts a new enquiry and returns the stored record.
func (r *enquiryRepository) Create(ctx context.Context, enquiry model.Enquiry) (*model.Enquiry, error) {
	query := `
		INSERT INTO enquiries (id, name, email, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + enquiryColumns

	created, err := scanEnquiry(r.pool.QueryRow(ctx, query,
		uuid.NewString(),
		enquiry.Name,
		enquiry.Email,
		enquiry.Message,
		string(enquiry.Status),
	))
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to insert enquiry")
		return nil, fmt.Errorf("failed to insert enquiry: %w", err)
	}

	r.logger.Info().Str("enquiry_id", created.ID).Msg("enquiry created")
	return created, nil
}

// UpdateStatus overwrites the status of an enquiry. Any value is accepted.
func (r *enquiryRepository) UpdateStatus(ctx context.Context, id string, status model.EnquiryStatus) (*model.Enquiry, error) {
	query := `UPDATE enquiries SET status = $1 WHERE id = $2 RETURNING ` + enquiryColumns

	updated, err := scanEnquiry(r.pool.QueryRow(ctx, query, string(status), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("enquiry_id", id).Msg("enquiry not found")
			return nil, model.ErrEnquiryNotFound
		}
		r.logger.Error().Err(err).Str("enquiry_id", id).Msg("failed to update enquiry status")
		return nil, fmt.Errorf("failed to update enquiry status: %w", err)
	}

	r.logger.Info().
		Str("enquiry_id", id).
		Str("status", string(status)).
		Msg("enquiry status updated")
	return updated, nil
}
