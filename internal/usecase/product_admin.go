package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/catalog"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/mutation"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type productWriter struct {
	gw ProductGateway
}

func (w productWriter) Create(ctx context.Context, p domain.ProductPayload) error {
	return w.gw.CreateProduct(ctx, p)
}

func (w productWriter) Update(ctx context.Context, id string, p domain.ProductPayload) error {
	return w.gw.UpdateProduct(ctx, id, p)
}

func (w productWriter) Delete(ctx context.Context, id string) error {
	return w.gw.DeleteProduct(ctx, id)
}

// ProductAdminUseCase - экран управления товарами: список с фильтрами, форма и загрузка изображения.
type ProductAdminUseCase struct {
	products *Collection[domain.Product]
	form     *mutation.Machine[domain.ProductForm, domain.ProductPayload]
	upload   *mutation.ImageUpload
}

func NewProductAdminUC(gw ProductGateway, images ImagesInfra, logger logger.Logger) *ProductAdminUseCase {
	uc := &ProductAdminUseCase{}

	uc.products = NewCollection("AdminProducts", func(ctx context.Context) ([]domain.Product, error) {
		return gw.ListProducts(ctx, nil)
	}, logger)

	uc.form = mutation.NewMachine(mutation.Config[domain.ProductForm, domain.ProductPayload]{
		Name:      "ProductForm",
		Blank:     func() domain.ProductForm { return domain.ProductForm{} },
		ToPayload: domain.NewProductPayload,
		Writer:    productWriter{gw: gw},
		Refresh:   uc.products.Refresh,
		Logger:    logger,
	})

	uc.upload = mutation.NewImageUpload(images, func(url string) {
		uc.form.UpdateForm(func(f *domain.ProductForm) { f.Image = url })
	})

	return uc
}

func (p *ProductAdminUseCase) Refresh(ctx context.Context) error {
	return p.products.Refresh(ctx)
}

// List применяет поиск и вкладку коллекции к текущему списку товаров.
func (p *ProductAdminUseCase) List(criteria catalog.Criteria) []domain.Product {
	return catalog.Filter(p.products.Items(), criteria)
}

func (p *ProductAdminUseCase) Form() ProductFormState {
	return p.form.Snapshot()
}

// Edit заполняет форму данными товара id из последнего прочитанного списка.
func (p *ProductAdminUseCase) Edit(id string) error {
	const op = "ProductAdminUseCase.Edit"

	for _, pr := range p.products.Items() {
		if pr.ID == id {
			p.form.Edit(id, domain.ProductFormFrom(pr))
			return nil
		}
	}

	return e.Wrap(op, e.Wrap(id, e.ErrNotFound))
}

func (p *ProductAdminUseCase) Cancel() {
	p.form.Cancel()
}

func (p *ProductAdminUseCase) UpdateForm(form domain.ProductForm) {
	p.form.UpdateForm(func(f *domain.ProductForm) { *f = form })
}

func (p *ProductAdminUseCase) ToggleCollection(c domain.Collection) {
	p.form.UpdateForm(func(f *domain.ProductForm) { f.ToggleCollection(c) })
}

func (p *ProductAdminUseCase) Submit(ctx context.Context) error {
	return p.form.Submit(ctx)
}

func (p *ProductAdminUseCase) Delete(ctx context.Context, id string, confirmed bool) (bool, error) {
	return p.form.Delete(ctx, id, confirmed)
}

func (p *ProductAdminUseCase) UploadImage(ctx context.Context, file *domain.ImageFile) (string, error) {
	return p.upload.Upload(ctx, file)
}

// Close отключает форму и список: завершившиеся позже запросы ничего не меняют.
func (p *ProductAdminUseCase) Close() {
	p.upload.Close()
	p.form.Close()
	p.products.Close()
}
