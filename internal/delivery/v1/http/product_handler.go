package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/catalog"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productUsecase usecase.ProductAdminUC
	maxImageSize   int64
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductAdminUC, maxImageSize int64, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, maxImageSize: maxImageSize, logger: logger}
}

// list фильтрует товары по строке поиска q и вкладке collection
// (all, flash, best, explore, unassigned).
func (p *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	selector, err := catalog.ParseSelector(r.URL.Query().Get("collection"))
	if err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, p.productUsecase.List(catalog.Criteria{
		SearchTerm: r.URL.Query().Get("q"),
		Selector:   selector,
	}))
}

func (p *ProductHandler) refresh(w http.ResponseWriter, r *http.Request) {
	if err := p.productUsecase.Refresh(r.Context()); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, e.Wrap(err.Error(), e.ErrOperationFailed))
		return
	}

	WriteSuccess(w, http.StatusOK, p.productUsecase.List(catalog.Criteria{}))
}

func (p *ProductHandler) state(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, p.productUsecase.Form())
}

func (p *ProductHandler) updateForm(w http.ResponseWriter, r *http.Request) {
	var form domain.ProductForm
	if err := decodeJSON(r, &form); err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	p.productUsecase.UpdateForm(form)
	WriteSuccess(w, http.StatusOK, p.productUsecase.Form())
}

func (p *ProductHandler) toggleCollection(w http.ResponseWriter, r *http.Request) {
	c, ok := domain.ParseCollection(chi.URLParam(r, "collection"))
	if !ok {
		WriteError(w, e.Wrap(chi.URLParam(r, "collection"), e.ErrUnknownSelector))
		return
	}

	p.productUsecase.ToggleCollection(c)
	WriteSuccess(w, http.StatusOK, p.productUsecase.Form())
}

func (p *ProductHandler) edit(w http.ResponseWriter, r *http.Request) {
	if err := p.productUsecase.Edit(chi.URLParam(r, "id")); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, p.productUsecase.Form())
}

func (p *ProductHandler) cancel(w http.ResponseWriter, r *http.Request) {
	p.productUsecase.Cancel()
	WriteSuccess(w, http.StatusOK, p.productUsecase.Form())
}

func (p *ProductHandler) submit(w http.ResponseWriter, r *http.Request) {
	if err := p.productUsecase.Submit(r.Context()); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, p.productUsecase.Form())
}

// delete удаляет товар только при confirm=true; без подтверждения запрос ничего не делает.
func (p *ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := p.productUsecase.Delete(r.Context(), id, r.URL.Query().Get("confirm") == "true")
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"id":      id,
		"deleted": deleted,
	})
}

func (p *ProductHandler) uploadImage(w http.ResponseWriter, r *http.Request) {
	file, ok := readImageRequest(w, r, p.maxImageSize, p.logger)
	if !ok {
		return
	}

	url, err := p.productUsecase.UploadImage(r.Context(), file)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"imageUrl": url,
	})
}
