package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryAdminUC
	maxImageSize    int64
	logger          logger.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryAdminUC, maxImageSize int64, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase, maxImageSize: maxImageSize, logger: logger}
}

func (c *CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, c.categoryUsecase.List(r.URL.Query().Get("q")))
}

func (c *CategoryHandler) refresh(w http.ResponseWriter, r *http.Request) {
	if err := c.categoryUsecase.Refresh(r.Context()); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, e.Wrap(err.Error(), e.ErrOperationFailed))
		return
	}

	WriteSuccess(w, http.StatusOK, c.categoryUsecase.List(""))
}

func (c *CategoryHandler) state(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, c.categoryUsecase.Form())
}

func (c *CategoryHandler) updateForm(w http.ResponseWriter, r *http.Request) {
	var form domain.CategoryForm
	if err := decodeJSON(r, &form); err != nil {
		c.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	c.categoryUsecase.UpdateForm(form)
	WriteSuccess(w, http.StatusOK, c.categoryUsecase.Form())
}

func (c *CategoryHandler) edit(w http.ResponseWriter, r *http.Request) {
	if err := c.categoryUsecase.Edit(chi.URLParam(r, "id")); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, c.categoryUsecase.Form())
}

func (c *CategoryHandler) cancel(w http.ResponseWriter, r *http.Request) {
	c.categoryUsecase.Cancel()
	WriteSuccess(w, http.StatusOK, c.categoryUsecase.Form())
}

func (c *CategoryHandler) submit(w http.ResponseWriter, r *http.Request) {
	if err := c.categoryUsecase.Submit(r.Context()); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, c.categoryUsecase.Form())
}

func (c *CategoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := c.categoryUsecase.Delete(r.Context(), id, r.URL.Query().Get("confirm") == "true")
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"id":      id,
		"deleted": deleted,
	})
}

func (c *CategoryHandler) uploadImage(w http.ResponseWriter, r *http.Request) {
	file, ok := readImageRequest(w, r, c.maxImageSize, c.logger)
	if !ok {
		return
	}

	url, err := c.categoryUsecase.UploadImage(r.Context(), file)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"imageUrl": url,
	})
}
