package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"agri-works/internal/cache"
	"agri-works/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEnquiryRepository is a mock implementation of EnquiryRepository.
type MockEnquiryRepository struct {
	mock.Mock
}

func (m *MockEnquiryRepository) List(ctx context.Context) ([]model.Enquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) Create(ctx context.Context, enquiry model.Enquiry) (*model.Enquiry, error) {
	args := m.Called(ctx, enquiry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) UpdateStatus(ctx context.Context, id string, status model.EnquiryStatus) (*model.Enquiry, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enquiry), args.Error(1)
}

func TestEnquiryService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockEnquiryRepository)
		svc := NewEnquiryService(repo, new(MockRouteCache), zerolog.Nop())

		enquiries := []model.Enquiry{{ID: "E1", Name: "A"}}
		repo.On("List", ctx).Return(enquiries, nil)

		assert.Equal(t, enquiries, svc.List(ctx))
	})

	t.Run("Store failure returns empty list", func(t *testing.T) {
		repo := new(MockEnquiryRepository)
		svc := NewEnquiryService(repo, new(MockRouteCache), zerolog.Nop())

		repo.On("List", ctx).Return(nil, errors.New("connection refused"))

		result := svc.List(ctx)
		require.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestEnquiryService_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		input         model.EnquiryInput
		expectedEmail string
	}{
		{
			name:          "Blank email becomes placeholder",
			input:         model.EnquiryInput{Name: "Test", Email: "", Message: "Hi"},
			expectedEmail: "N/A",
		},
		{
			name:          "Whitespace email becomes placeholder",
			input:         model.EnquiryInput{Name: "Test", Email: "   ", Message: "Hi"},
			expectedEmail: "N/A",
		},
		{
			name:          "Email is kept",
			input:         model.EnquiryInput{Name: "Test", Email: "farmer@example.com", Message: "Hi"},
			expectedEmail: "farmer@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockEnquiryRepository)
			routes := new(MockRouteCache)
			svc := NewEnquiryService(repo, routes, zerolog.Nop())

			expected := model.Enquiry{
				Name:    tt.input.Name,
				Email:   tt.expectedEmail,
				Message: tt.input.Message,
				Status:  model.EnquiryNew,
			}
			stored := expected
			stored.ID = "E1"
			stored.CreatedAt = createdAt

			repo.On("Create", ctx, expected).Return(&stored, nil)
			routes.On("Invalidate", cache.EnquiryRoutes).Return()

			result := svc.Create(ctx, tt.input)

			require.NotNil(t, result)
			assert.Equal(t, tt.expectedEmail, result.Email)
			assert.Equal(t, model.EnquiryNew, result.Status)
			repo.AssertExpectations(t)
			routes.AssertExpectations(t)
		})
	}

	t.Run("Failure returns nil", func(t *testing.T) {
		repo := new(MockEnquiryRepository)
		routes := new(MockRouteCache)
		svc := NewEnquiryService(repo, routes, zerolog.Nop())

		repo.On("Create", ctx, mock.AnythingOfType("model.Enquiry")).Return(nil, errors.New("disk full"))

		assert.Nil(t, svc.Create(ctx, model.EnquiryInput{Name: "A", Message: "B"}))
		routes.AssertNotCalled(t, "Invalidate", mock.Anything)
	})
}

func TestEnquiryService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Contacted keeps creation time", func(t *testing.T) {
		repo := new(MockEnquiryRepository)
		routes := new(MockRouteCache)
		svc := NewEnquiryService(repo, routes, zerolog.Nop())

		updated := &model.Enquiry{ID: "E1", Status: model.EnquiryContacted, CreatedAt: createdAt}
		repo.On("UpdateStatus", ctx, "E1", model.EnquiryContacted).Return(updated, nil)
		routes.On("Invalidate", cache.EnquiryRoutes).Return()

		result, err := svc.UpdateStatus(ctx, "E1", model.EnquiryContacted)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, model.EnquiryContacted, result.Status)
		assert.Equal(t, createdAt, result.CreatedAt)
		routes.AssertExpectations(t)
	})

	t.Run("Any status is passed through", func(t *testing.T) {
		repo := new(MockEnquiryRepository)
		routes := new(MockRouteCache)
		svc := NewEnquiryService(repo, routes, zerolog.Nop())

		repo.On("UpdateStatus", ctx, "E1", model.EnquiryStatus("Spam")).
			Return(&model.Enquiry{ID: "E1", Status: "Spam"}, nil)
		routes.On("Invalidate", cache.EnquiryRoutes).Return()

		result, err := svc.UpdateStatus(ctx, "E1", "Spam")
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, model.EnquiryStatus("Spam"), result.Status)
	})

	t.Run("Not found is reported", func(t *testing.T) {
		repo := new(MockEnquiryRepository)
		routes := new(MockRouteCache)
		svc := NewEnquiryService(repo, routes, zerolog.Nop())

		repo.On("UpdateStatus", ctx, "E404", model.EnquiryRead).Return(nil, model.ErrEnquiryNotFound)

		result, err := svc.UpdateStatus(ctx, "E404", model.EnquiryRead)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, model.ErrEnquiryNotFound)
		routes.AssertNotCalled(t, "Invalidate", mock.Anything)
	})

	t.Run("Store failure is wrapped", func(t *testing.T) {
		repo := new(MockEnquiryRepository)
		routes := new(MockRouteCache)
		svc := NewEnquiryService(repo, routes, zerolog.Nop())

		repo.On("UpdateStatus", ctx, "E1", model.EnquiryRead).Return(nil, errors.New("connection reset"))

		result, err := svc.UpdateStatus(ctx, "E1", model.EnquiryRead)
		assert.Nil(t, result)
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrEnquiryNotFound)
		routes.AssertNotCalled(t, "Invalidate", mock.Anything)
	})
}
