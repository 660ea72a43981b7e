package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"agri-works/internal/cache"
	"agri-works/internal/model"
	"agri-works/internal/repository"

	"github.com/rs/zerolog"
)

// enquiryService implements EnquiryService.
type enquiryService struct {
	enquiryRepo repository.EnquiryRepository
	routes      cache.RouteCache
	logger      zerolog.Logger
}

// NewEnquiryService creates a new enquiry service.
func NewEnquiryService(enquiryRepo repository.EnquiryRepository, routes cache.RouteCache, logger zerolog.Logger) EnquiryService {
	return &enquiryService{
		enquiryRepo: enquiryRepo,
		routes:      routes,
		logger:      logger.With().Str("service", "enquiry").Logger(),
	}
}

// List retrieves every enquiry, newest first.
func (s *enquiryService) List(ctx context.Context) []model.Enquiry {
	enquiries, err := s.enquiryRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list enquiries")
		return []model.Enquiry{}
	}
	if enquiries == nil {
		return []model.Enquiry{}
	}
	return enquiries
}

// Create stores a submitted enquiry with status New. A blank email is
// stored as the N/A placeholder.
func (s *enquiryService) Create(ctx context.Context, input model.EnquiryInput) *model.Enquiry {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		email = model.EmailNotProvided
	}

	enquiry, err := s.enquiryRepo.Create(ctx, model.Enquiry{
		Name:    input.Name,
		Email:   email,
		Message: input.Message,
		Status:  model.EnquiryNew,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create enquiry")
		return nil
	}

	s.routes.Invalidate(cache.EnquiryRoutes...)
	s.logger.Info().Str("enquiry_id", enquiry.ID).Msg("enquiry received")

	return enquiry
}

// UpdateStatus overwrites the status of an enquiry. Transitions are not
// restricted.
func (s *enquiryService) UpdateStatus(ctx context.Context, id string, status model.EnquiryStatus) (*model.Enquiry, error) {
	enquiry, err := s.enquiryRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, model.ErrEnquiryNotFound) {
			s.logger.Debug().Str("enquiry_id", id).Msg("enquiry not found")
			return nil, err
		}
		s.logger.Error().Err(err).
			Str("enquiry_id", id).
			Str("status", string(status)).
			Msg("failed to update enquiry status")
		return nil, fmt.Errorf("failed to update enquiry: %w", err)
	}

	s.routes.Invalidate(cache.EnquiryRoutes...)

	return enquiry, nil
}
