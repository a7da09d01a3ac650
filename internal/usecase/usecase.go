package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/catalog"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/mutation"
)

type (
	ProductFormState  = mutation.Snapshot[domain.ProductForm]
	CategoryFormState = mutation.Snapshot[domain.CategoryForm]
)

type StorefrontUC interface {
	Home(ctx context.Context) (*domain.HomePage, error)
	Countdown() domain.Countdown
	Slides() domain.SlideState
	SelectSlide(index int) error
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	Nav(currentRoute string) []domain.NavItem
}

type ProductAdminUC interface {
	Refresh(ctx context.Context) error
	List(criteria catalog.Criteria) []domain.Product
	Form() ProductFormState
	Edit(id string) error
	Cancel()
	UpdateForm(form domain.ProductForm)
	ToggleCollection(c domain.Collection)
	Submit(ctx context.Context) error
	Delete(ctx context.Context, id string, confirmed bool) (bool, error)
	UploadImage(ctx context.Context, file *domain.ImageFile) (string, error)
}

type CategoryAdminUC interface {
	Refresh(ctx context.Context) error
	List(searchTerm string) []domain.Category
	Form() CategoryFormState
	Edit(id string) error
	Cancel()
	UpdateForm(form domain.CategoryForm)
	Submit(ctx context.Context) error
	Delete(ctx context.Context, id string, confirmed bool) (bool, error)
	UploadImage(ctx context.Context, file *domain.ImageFile) (string, error)
}
