package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/storefront/internal/catalog"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/mutation"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var adminProducts = []domain.Product{
	{ID: "p1", Title: "Gaming Mouse", Price: decimal.NewFromInt(20), Collections: []domain.Collection{domain.CollectionFlash}},
	{ID: "p2", Title: "iPhone", Price: decimal.NewFromInt(999)},
}

func TestCollection_KeepsStaleItemsOnError(t *testing.T) {
	calls := 0
	c := NewCollection("Test", func(context.Context) ([]int, error) {
		calls++
		if calls == 1 {
			return []int{1, 2, 3}, nil
		}
		return nil, errors.New("catalog down")
	}, logger.NewNop())

	assert.Empty(t, c.Items())
	assert.False(t, c.Loaded())

	require.NoError(t, c.Refresh(context.Background()))
	assert.Error(t, c.Refresh(context.Background()))

	assert.Equal(t, []int{1, 2, 3}, c.Items())
	assert.True(t, c.Loaded())
}

func TestCollection_ClosedIgnoresLateResults(t *testing.T) {
	c := NewCollection("Test", func(context.Context) ([]string, error) {
		return []string{"late"}, nil
	}, logger.NewNop())

	c.Close()
	require.NoError(t, c.Refresh(context.Background()))
	assert.Empty(t, c.Items())
}

func TestProductAdmin_ListFiltersCurrentProducts(t *testing.T) {
	gw := new(MockCatalog)
	gw.On("ListProducts", allProducts()).Return(adminProducts, nil).Once()

	uc := NewProductAdminUC(gw, gw, logger.NewNop())
	require.NoError(t, uc.Refresh(context.Background()))

	assert.Equal(t, []domain.Product{adminProducts[1]}, uc.List(catalog.Criteria{Selector: catalog.Unassigned()}))
	assert.Equal(t, []domain.Product{adminProducts[0]}, uc.List(catalog.Criteria{SearchTerm: "MOUSE", Selector: catalog.All()}))
	gw.AssertExpectations(t)
}

func TestProductAdmin_EditSubmitUpdatesAndRefetches(t *testing.T) {
	gw := new(MockCatalog)
	gw.On("ListProducts", allProducts()).Return(adminProducts, nil).Twice()
	gw.On("UpdateProduct", "p2", mock.MatchedBy(func(p domain.ProductPayload) bool {
		return p.Title == "iPhone 15" && p.Price.String() == "999" && len(p.Collections) == 1
	})).Return(nil).Once()

	uc := NewProductAdminUC(gw, gw, logger.NewNop())
	require.NoError(t, uc.Refresh(context.Background()))

	require.NoError(t, uc.Edit("p2"))
	form := uc.Form().Form
	form.Title = "iPhone 15"
	uc.UpdateForm(form)
	uc.ToggleCollection(domain.CollectionBest)

	require.NoError(t, uc.Submit(context.Background()))

	state := uc.Form()
	assert.Empty(t, state.EditingID)
	assert.Equal(t, domain.ProductForm{}, state.Form)
	assert.Equal(t, mutation.OutcomeSuccess, state.Outcome)
	gw.AssertExpectations(t)
}

func TestProductAdmin_EditUnknownID(t *testing.T) {
	uc := NewProductAdminUC(new(MockCatalog), new(MockCatalog), logger.NewNop())
	assert.ErrorIs(t, uc.Edit("missing"), e.ErrNotFound)
}

func TestProductAdmin_SubmitFailureSurfacesOperationFailed(t *testing.T) {
	gw := new(MockCatalog)
	gw.On("CreateProduct", mock.Anything).Return(e.ErrTransport).Once()

	uc := NewProductAdminUC(gw, gw, logger.NewNop())
	uc.UpdateForm(domain.ProductForm{Title: "Speaker", Price: decimal.NewFromInt(50)})

	err := uc.Submit(context.Background())
	assert.ErrorIs(t, err, e.ErrOperationFailed)
	assert.ErrorIs(t, err, e.ErrTransport)
	assert.Equal(t, "Speaker", uc.Form().Form.Title)
	gw.AssertNotCalled(t, "ListProducts", mock.Anything)
}

func TestProductAdmin_DeleteNeedsConfirmation(t *testing.T) {
	gw := new(MockCatalog)
	uc := NewProductAdminUC(gw, gw, logger.NewNop())

	dispatched, err := uc.Delete(context.Background(), "p1", false)
	require.NoError(t, err)
	assert.False(t, dispatched)
	gw.AssertNotCalled(t, "DeleteProduct", mock.Anything)

	gw.On("DeleteProduct", "p1").Return(nil).Once()
	gw.On("ListProducts", allProducts()).Return(adminProducts[1:], nil).Once()

	dispatched, err = uc.Delete(context.Background(), "p1", true)
	require.NoError(t, err)
	assert.True(t, dispatched)
	assert.Len(t, uc.List(catalog.Criteria{}), 1)
	gw.AssertExpectations(t)
}

func TestProductAdmin_UploadImageFillsForm(t *testing.T) {
	gw := new(MockCatalog)
	file := &domain.ImageFile{Name: "mouse.png", MimeType: "image/png", Data: []byte{1, 2}}
	gw.On("UploadImage", file).Return("https://cdn/mouse.png", nil).Once()

	uc := NewProductAdminUC(gw, gw, logger.NewNop())
	uc.UpdateForm(domain.ProductForm{Title: "Mouse"})

	url, err := uc.UploadImage(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/mouse.png", url)

	form := uc.Form().Form
	assert.Equal(t, "Mouse", form.Title)
	assert.Equal(t, "https://cdn/mouse.png", form.Image)
}

func TestProductAdmin_CloseDisposesForm(t *testing.T) {
	gw := new(MockCatalog)
	uc := NewProductAdminUC(gw, gw, logger.NewNop())
	uc.Close()

	assert.ErrorIs(t, uc.Submit(context.Background()), e.ErrDisposed)
	_, err := uc.UploadImage(context.Background(), &domain.ImageFile{})
	assert.ErrorIs(t, err, e.ErrDisposed)
}

func TestCategoryAdmin_CreateTrimsAndRefetches(t *testing.T) {
	gw := new(MockCatalog)
	gw.On("CreateCategory", domain.CategoryPayload{Name: "Phones", Image: ""}).Return(nil).Once()
	gw.On("ListCategories").Return([]domain.Category{{ID: "c1", Name: "Phones"}}, nil).Once()

	uc := NewCategoryAdminUC(gw, gw, logger.NewNop())
	uc.UpdateForm(domain.CategoryForm{Name: "  Phones  ", Image: "   "})

	require.NoError(t, uc.Submit(context.Background()))
	assert.Equal(t, []domain.Category{{ID: "c1", Name: "Phones"}}, uc.List(""))
	assert.Equal(t, domain.CategoryForm{}, uc.Form().Form)
	gw.AssertExpectations(t)
}

func TestCategoryAdmin_EmptyNameIsRejected(t *testing.T) {
	gw := new(MockCatalog)
	uc := NewCategoryAdminUC(gw, gw, logger.NewNop())
	uc.UpdateForm(domain.CategoryForm{Name: "   "})

	assert.ErrorIs(t, uc.Submit(context.Background()), e.ErrCategoryNameRequired)
	gw.AssertNotCalled(t, "CreateCategory", mock.Anything)
}

func TestCategoryAdmin_EditAndUpdate(t *testing.T) {
	gw := new(MockCatalog)
	gw.On("ListCategories").Return([]domain.Category{{ID: "c1", Name: "Audio", Image: "a.png"}}, nil).Twice()
	gw.On("UpdateCategory", "c1", domain.CategoryPayload{Name: "Audio Gear", Image: "a.png"}).Return(nil).Once()

	uc := NewCategoryAdminUC(gw, gw, logger.NewNop())
	require.NoError(t, uc.Refresh(context.Background()))
	require.NoError(t, uc.Edit("c1"))
	assert.Equal(t, "c1", uc.Form().EditingID)

	uc.UpdateForm(domain.CategoryForm{Name: "Audio Gear", Image: "a.png"})
	require.NoError(t, uc.Submit(context.Background()))
	gw.AssertExpectations(t)

	uc.Cancel()
	assert.Empty(t, uc.Form().EditingID)
}
