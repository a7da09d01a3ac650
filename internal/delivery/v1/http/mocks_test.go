package http

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/catalog"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/stretchr/testify/mock"
)

type MockStorefrontUC struct {
	mock.Mock
}

func (m *MockStorefrontUC) Home(ctx context.Context) (*domain.HomePage, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HomePage), args.Error(1)
}

func (m *MockStorefrontUC) Countdown() domain.Countdown {
	return m.Called().Get(0).(domain.Countdown)
}

func (m *MockStorefrontUC) Slides() domain.SlideState {
	return m.Called().Get(0).(domain.SlideState)
}

func (m *MockStorefrontUC) SelectSlide(index int) error {
	return m.Called(index).Error(0)
}

func (m *MockStorefrontUC) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockStorefrontUC) Nav(currentRoute string) []domain.NavItem {
	return m.Called(currentRoute).Get(0).([]domain.NavItem)
}

type MockProductAdminUC struct {
	mock.Mock
}

func (m *MockProductAdminUC) Refresh(ctx context.Context) error {
	return m.Called().Error(0)
}

func (m *MockProductAdminUC) List(criteria catalog.Criteria) []domain.Product {
	return m.Called(criteria).Get(0).([]domain.Product)
}

func (m *MockProductAdminUC) Form() usecase.ProductFormState {
	return m.Called().Get(0).(usecase.ProductFormState)
}

func (m *MockProductAdminUC) Edit(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockProductAdminUC) Cancel() {
	m.Called()
}

func (m *MockProductAdminUC) UpdateForm(form domain.ProductForm) {
	m.Called(form)
}

func (m *MockProductAdminUC) ToggleCollection(c domain.Collection) {
	m.Called(c)
}

func (m *MockProductAdminUC) Submit(ctx context.Context) error {
	return m.Called().Error(0)
}

func (m *MockProductAdminUC) Delete(ctx context.Context, id string, confirmed bool) (bool, error) {
	args := m.Called(id, confirmed)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductAdminUC) UploadImage(ctx context.Context, file *domain.ImageFile) (string, error) {
	args := m.Called(file)
	return args.String(0), args.Error(1)
}

type MockCategoryAdminUC struct {
	mock.Mock
}

func (m *MockCategoryAdminUC) Refresh(ctx context.Context) error {
	return m.Called().Error(0)
}

func (m *MockCategoryAdminUC) List(searchTerm string) []domain.Category {
	return m.Called(searchTerm).Get(0).([]domain.Category)
}

func (m *MockCategoryAdminUC) Form() usecase.CategoryFormState {
	return m.Called().Get(0).(usecase.CategoryFormState)
}

func (m *MockCategoryAdminUC) Edit(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockCategoryAdminUC) Cancel() {
	m.Called()
}

func (m *MockCategoryAdminUC) UpdateForm(form domain.CategoryForm) {
	m.Called(form)
}

func (m *MockCategoryAdminUC) Submit(ctx context.Context) error {
	return m.Called().Error(0)
}

func (m *MockCategoryAdminUC) Delete(ctx context.Context, id string, confirmed bool) (bool, error) {
	args := m.Called(id, confirmed)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryAdminUC) UploadImage(ctx context.Context, file *domain.ImageFile) (string, error) {
	args := m.Called(file)
	return args.String(0), args.Error(1)
}
