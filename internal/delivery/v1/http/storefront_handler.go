package http

import (
	"net/http"
	"strconv"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type StorefrontHandler struct {
	storefrontUsecase usecase.StorefrontUC
	logger            logger.Logger
}

func NewStorefrontHandler(storefrontUsecase usecase.StorefrontUC, logger logger.Logger) *StorefrontHandler {
	return &StorefrontHandler{storefrontUsecase: storefrontUsecase, logger: logger}
}

// home отдает секции витрины, категории с иконками, отсчет и слайды.
func (s *StorefrontHandler) home(w http.ResponseWriter, r *http.Request) {
	page, err := s.storefrontUsecase.Home(r.Context())
	if err != nil {
		s.logger.Errorf(err, "home page")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, page)
}

func (s *StorefrontHandler) countdown(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, s.storefrontUsecase.Countdown())
}

func (s *StorefrontHandler) slides(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, s.storefrontUsecase.Slides())
}

func (s *StorefrontHandler) selectSlide(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		WriteError(w, e.Wrap(chi.URLParam(r, "index"), e.ErrStatusBadRequest))
		return
	}

	if err := s.storefrontUsecase.SelectSlide(index); err != nil {
		s.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, s.storefrontUsecase.Slides())
}

func (s *StorefrontHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := s.storefrontUsecase.Dashboard(r.Context())
	if err != nil {
		s.logger.Errorf(err, "dashboard")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, stats)
}

// nav отдает пункты меню админки; активен пункт, совпадающий с path.
func (s *StorefrontHandler) nav(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, s.storefrontUsecase.Nav(r.URL.Query().Get("path")))
}
