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

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRouteCache is a mock implementation of cache.RouteCache.
type MockRouteCache struct {
	mock.Mock
}

func (m *MockRouteCache) Get(ctx context.Context, route, variant string) (*cache.Entry, uint64, error) {
	args := m.Called(ctx, route, variant)
	if args.Get(0) == nil {
		return nil, args.Get(1).(uint64), args.Error(2)
	}
	return args.Get(0).(*cache.Entry), args.Get(1).(uint64), args.Error(2)
}

func (m *MockRouteCache) Set(ctx context.Context, route, variant string, generation uint64, entry cache.Entry) error {
	args := m.Called(ctx, route, variant, generation, entry)
	return args.Error(0)
}

func (m *MockRouteCache) Invalidate(routes ...string) {
	m.Called(routes)
}

func TestProductService_List(t *testing.T) {
	ctx := context.Background()

	testProducts := []model.Product{
		{ID: "P002", Name: "Newer", Price: 20, Category: model.CategoryPloughs, CreatedAt: time.Now()},
		{ID: "P001", Name: "Older", Price: 10, Category: model.CategoryTrolleys, CreatedAt: time.Now().Add(-time.Hour)},
	}

	tests := []struct {
		name       string
		mockReturn []model.Product
		mockError  error
		expected   []model.Product
	}{
		{
			name:       "Success",
			mockReturn: testProducts,
			expected:   testProducts,
		},
		{
			name:       "Repository error returns empty list",
			mockReturn: nil,
			mockError:  errors.New("connection refused"),
			expected:   []model.Product{},
		},
		{
			name:       "Nil result is normalised",
			mockReturn: nil,
			expected:   []model.Product{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockProductRepository)
			routes := new(MockRouteCache)
			svc := NewProductService(repo, routes, zerolog.Nop())

			repo.On("List", ctx).Return(tt.mockReturn, tt.mockError)

			result := svc.List(ctx)

			require.NotNil(t, result)
			assert.Equal(t, tt.expected, result)
			repo.AssertExpectations(t)
			routes.AssertNotCalled(t, "Invalidate", mock.Anything)
		})
	}
}

func TestProductService_GetByID(t *testing.T) {
	ctx := context.Background()
	product := &model.Product{ID: "P001", Name: "Disc Plough", Price: 85000}

	tests := []struct {
		name        string
		id          string
		mockReturn  *model.Product
		mockError   error
		expectError error
		callsRepo   bool
	}{
		{name: "Found", id: "P001", mockReturn: product, callsRepo: true},
		{name: "Not found", id: "P404", callsRepo: true, expectError: model.ErrProductNotFound},
		{name: "Empty ID", id: "", expectError: model.ErrProductNotFound},
		{name: "Repository error", id: "P001", mockError: errors.New("timeout"), callsRepo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockProductRepository)
			svc := NewProductService(repo, new(MockRouteCache), zerolog.Nop())

			if tt.callsRepo {
				repo.On("GetByID", ctx, tt.id).Return(tt.mockReturn, tt.mockError)
			}

			result, err := svc.GetByID(ctx, tt.id)

			switch {
			case tt.expectError != nil:
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, result)
			case tt.mockError != nil:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, model.ErrProductNotFound)
				assert.Nil(t, result)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, result)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies defaults and invalidates routes", func(t *testing.T) {
		repo := new(MockProductRepository)
		routes := new(MockRouteCache)
		svc := NewProductService(repo, routes, zerolog.Nop())

		input := model.ProductInput{Name: "Trolley", Price: 125000.75, Category: model.CategoryTrolleys}
		expectedInput := input
		expectedInput.Status = model.StatusActive
		expectedInput.Images = []string{}
		created := &model.Product{ID: "new-id", Name: "Trolley", Price: 125000.75, Status: model.StatusActive, Images: []string{}}

		repo.On("Create", ctx, expectedInput).Return(created, nil)
		routes.On("Invalidate", cache.ProductRoutes).Return()

		result := svc.Create(ctx, input)

		assert.True(t, result.Success)
		assert.Equal(t, created, result.Data)
		assert.Equal(t, 125000.75, result.Data.Price)
		assert.Empty(t, result.Error)
		repo.AssertExpectations(t)
		routes.AssertExpectations(t)
	})

	t.Run("Keeps explicit status", func(t *testing.T) {
		repo := new(MockProductRepository)
		routes := new(MockRouteCache)
		svc := NewProductService(repo, routes, zerolog.Nop())

		input := model.ProductInput{Name: "Old", Price: 1, Category: model.CategoryOther, Status: model.StatusDiscontinued, Images: []string{"a.jpg"}}

		repo.On("Create", ctx, input).Return(&model.Product{ID: "x"}, nil)
		routes.On("Invalidate", cache.ProductRoutes).Return()

		assert.True(t, svc.Create(ctx, input).Success)
		repo.AssertExpectations(t)
	})

	t.Run("No server side validation", func(t *testing.T) {
		repo := new(MockProductRepository)
		routes := new(MockRouteCache)
		svc := NewProductService(repo, routes, zerolog.Nop())

		input := model.ProductInput{Name: "", Price: -5, Category: "Boats"}
		repo.On("Create", ctx, mock.AnythingOfType("model.ProductInput")).Return(&model.Product{ID: "x", Price: -5}, nil)
		routes.On("Invalidate", cache.ProductRoutes).Return()

		assert.True(t, svc.Create(ctx, input).Success)
	})

	t.Run("Failure hides the cause", func(t *testing.T) {
		repo := new(MockProductRepository)
		routes := new(MockRouteCache)
		svc := NewProductService(repo, routes, zerolog.Nop())

		repo.On("Create", ctx, mock.AnythingOfType("model.ProductInput")).
			Return(nil, errors.New("pq: null value in column \"category\""))

		result := svc.Create(ctx, model.ProductInput{Name: "x"})

		assert.False(t, result.Success)
		assert.Nil(t, result.Data)
		assert.Equal(t, "Failed to create product", result.Error)
		routes.AssertNotCalled(t, "Invalidate", mock.Anything)
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()
	status := model.StatusDiscontinued
	patch := model.ProductPatch{Status: &status}

	tests := []struct {
		name          string
		mockReturn    *model.Product
		mockError     error
		success       bool
		notFound      bool
		invalidations int
	}{
		{
			name:          "Success",
			mockReturn:    &model.Product{ID: "P001", Status: model.StatusDiscontinued},
			success:       true,
			invalidations: 1,
		},
		{
			name:      "Not found",
			mockError: model.ErrProductNotFound,
			notFound:  true,
		},
		{
			name:      "Database error",
			mockError: errors.New("deadlock detected"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockProductRepository)
			routes := new(MockRouteCache)
			svc := NewProductService(repo, routes, zerolog.Nop())

			repo.On("Update", ctx, "P001", patch).Return(tt.mockReturn, tt.mockError)
			routes.On("Invalidate", cache.ProductRoutes).Return()

			result := svc.Update(ctx, "P001", patch)

			assert.Equal(t, tt.success, result.Success)
			assert.Equal(t, tt.notFound, result.NotFound)
			if tt.success {
				assert.Equal(t, tt.mockReturn, result.Data)
			} else {
				assert.Equal(t, "Failed to update product", result.Error)
			}
			routes.AssertNumberOfCalls(t, "Invalidate", tt.invalidations)
		})
	}
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		mockError     error
		success       bool
		notFound      bool
		invalidations int
	}{
		{name: "Success", success: true, invalidations: 1},
		{name: "Not found", mockError: model.ErrProductNotFound, notFound: true},
		{name: "Database error", mockError: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockProductRepository)
			routes := new(MockRouteCache)
			svc := NewProductService(repo, routes, zerolog.Nop())

			repo.On("Delete", ctx, "P001").Return(tt.mockError)
			routes.On("Invalidate", cache.ProductRoutes).Return()

			result := svc.Delete(ctx, "P001")

			assert.Equal(t, tt.success, result.Success)
			assert.Equal(t, tt.notFound, result.NotFound)
			assert.Nil(t, result.Data)
			if !tt.success {
				assert.Equal(t, "Failed to delete product", result.Error)
			}
			routes.AssertNumberOfCalls(t, "Invalidate", tt.invalidations)
		})
	}
}
