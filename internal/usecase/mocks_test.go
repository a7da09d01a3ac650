package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockCatalog реализует ProductGateway, CategoryGateway и ImagesInfra.
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) ListProducts(ctx context.Context, collection *domain.Collection) ([]domain.Product, error) {
	args := m.Called(collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalog) CreateProduct(ctx context.Context, payload domain.ProductPayload) error {
	return m.Called(payload).Error(0)
}

func (m *MockCatalog) UpdateProduct(ctx context.Context, id string, payload domain.ProductPayload) error {
	return m.Called(id, payload).Error(0)
}

func (m *MockCatalog) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(id).Error(0)
}

func (m *MockCatalog) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCatalog) CreateCategory(ctx context.Context, payload domain.CategoryPayload) error {
	return m.Called(payload).Error(0)
}

func (m *MockCatalog) UpdateCategory(ctx context.Context, id string, payload domain.CategoryPayload) error {
	return m.Called(id, payload).Error(0)
}

func (m *MockCatalog) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(id).Error(0)
}

func (m *MockCatalog) UploadImage(ctx context.Context, file *domain.ImageFile) (string, error) {
	args := m.Called(file)
	return args.String(0), args.Error(1)
}

type MockDeadlines struct {
	mock.Mock
}

func (m *MockDeadlines) GetOrCreate(ctx context.Context, key string, candidate time.Time, ttl time.Duration) (time.Time, error) {
	args := m.Called(key, candidate, ttl)
	return args.Get(0).(time.Time), args.Error(1)
}

func allProducts() any {
	return mock.MatchedBy(func(c *domain.Collection) bool { return c == nil })
}

func inCollection(want domain.Collection) any {
	return mock.MatchedBy(func(c *domain.Collection) bool { return c != nil && *c == want })
}
