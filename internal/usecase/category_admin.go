package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/catalog"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/mutation"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type categoryWriter struct {
	gw CategoryGateway
}

func (w categoryWriter) Create(ctx context.Context, p domain.CategoryPayload) error {
	return w.gw.CreateCategory(ctx, p)
}

func (w categoryWriter) Update(ctx context.Context, id string, p domain.CategoryPayload) error {
	return w.gw.UpdateCategory(ctx, id, p)
}

func (w categoryWriter) Delete(ctx context.Context, id string) error {
	return w.gw.DeleteCategory(ctx, id)
}

// CategoryAdminUseCase - экран управления категориями.
type CategoryAdminUseCase struct {
	categories *Collection[domain.Category]
	form       *mutation.Machine[domain.CategoryForm, domain.CategoryPayload]
	upload     *mutation.ImageUpload
}

func NewCategoryAdminUC(gw CategoryGateway, images ImagesInfra, logger logger.Logger) *CategoryAdminUseCase {
	uc := &CategoryAdminUseCase{}

	uc.categories = NewCollection("AdminCategories", gw.ListCategories, logger)

	uc.form = mutation.NewMachine(mutation.Config[domain.CategoryForm, domain.CategoryPayload]{
		Name:      "CategoryForm",
		Blank:     func() domain.CategoryForm { return domain.CategoryForm{} },
		ToPayload: domain.NewCategoryPayload,
		Writer:    categoryWriter{gw: gw},
		Refresh:   uc.categories.Refresh,
		Logger:    logger,
	})

	uc.upload = mutation.NewImageUpload(images, func(url string) {
		uc.form.UpdateForm(func(f *domain.CategoryForm) { f.Image = url })
	})

	return uc
}

func (c *CategoryAdminUseCase) Refresh(ctx context.Context) error {
	return c.categories.Refresh(ctx)
}

func (c *CategoryAdminUseCase) List(searchTerm string) []domain.Category {
	return catalog.FilterCategories(c.categories.Items(), searchTerm)
}

func (c *CategoryAdminUseCase) Form() CategoryFormState {
	return c.form.Snapshot()
}

func (c *CategoryAdminUseCase) Edit(id string) error {
	const op = "CategoryAdminUseCase.Edit"

	for _, cat := range c.categories.Items() {
		if cat.ID == id {
			c.form.Edit(id, domain.CategoryFormFrom(cat))
			return nil
		}
	}

	return e.Wrap(op, e.Wrap(id, e.ErrNotFound))
}

func (c *CategoryAdminUseCase) Cancel() {
	c.form.Cancel()
}

func (c *CategoryAdminUseCase) UpdateForm(form domain.CategoryForm) {
	c.form.UpdateForm(func(f *domain.CategoryForm) { *f = form })
}

func (c *CategoryAdminUseCase) Submit(ctx context.Context) error {
	return c.form.Submit(ctx)
}

func (c *CategoryAdminUseCase) Delete(ctx context.Context, id string, confirmed bool) (bool, error) {
	return c.form.Delete(ctx, id, confirmed)
}

func (c *CategoryAdminUseCase) UploadImage(ctx context.Context, file *domain.ImageFile) (string, error) {
	return c.upload.Upload(ctx, file)
}

func (c *CategoryAdminUseCase) Close() {
	c.upload.Close()
	c.form.Close()
	c.categories.Close()
}
