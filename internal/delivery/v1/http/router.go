package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Router struct {
	router       *chi.Mux
	maxImageSize int64
	logger       logger.Logger
}

func NewRouter(router *chi.Mux, maxImageSize int64, logger logger.Logger) *Router {
	return &Router{router: router, maxImageSize: maxImageSize, logger: logger}
}

func (r *Router) Init(sfUC usecase.StorefrontUC, prUC usecase.ProductAdminUC, ctUC usecase.CategoryAdminUC) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.Recoverer)
	r.router.Use(r.logRequests)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		sfHandler := NewStorefrontHandler(sfUC, r.logger)
		registerStorefrontRoutes(v1, sfHandler)

		v1.Route("/admin", func(admin chi.Router) {
			admin.Get("/dashboard", sfHandler.dashboard)
			admin.Get("/nav", sfHandler.nav)

			registerProductRoutes(admin, NewProductHandler(prUC, r.maxImageSize, r.logger))
			registerCategoryRoutes(admin, NewCategoryHandler(ctUC, r.maxImageSize, r.logger))
		})
	})
}

func registerStorefrontRoutes(router chi.Router, sfHandler *StorefrontHandler) {
	router.Route("/storefront", func(sf chi.Router) {
		sf.Get("/home", sfHandler.home)
		sf.Get("/countdown", sfHandler.countdown)
		sf.Get("/slides", sfHandler.slides)
		sf.Post("/slides/{index}", sfHandler.selectSlide)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.list)
		pr.Get("/state", prHandler.state)
		pr.Post("/refresh", prHandler.refresh)
		pr.Put("/form", prHandler.updateForm)
		pr.Post("/form/collections/{collection}", prHandler.toggleCollection)
		pr.Post("/edit/{id}", prHandler.edit)
		pr.Post("/cancel", prHandler.cancel)
		pr.Post("/submit", prHandler.submit)
		pr.Post("/image", prHandler.uploadImage)
		pr.Delete("/{id}", prHandler.delete)
	})
}

func registerCategoryRoutes(router chi.Router, ctHandler *CategoryHandler) {
	router.Route("/categories", func(ct chi.Router) {
		ct.Get("/", ctHandler.list)
		ct.Get("/state", ctHandler.state)
		ct.Post("/refresh", ctHandler.refresh)
		ct.Put("/form", ctHandler.updateForm)
		ct.Post("/edit/{id}", ctHandler.edit)
		ct.Post("/cancel", ctHandler.cancel)
		ct.Post("/submit", ctHandler.submit)
		ct.Post("/image", ctHandler.uploadImage)
		ct.Delete("/{id}", ctHandler.delete)
	})
}

func (r *Router) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, req)

		r.logger.Debugf("%s %s %d %s request_id=%s", req.Method, req.URL.Path, ww.Status(), time.Since(start), middleware.GetReqID(req.Context()))
	})
}
