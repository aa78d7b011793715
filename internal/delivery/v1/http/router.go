package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/hfsolutions/catalog-backend/internal/usecase"
	"github.com/hfsolutions/catalog-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/hfsolutions/catalog-backend/docs" // Импорт сгенерированных файлов
)

type Router struct {
	router       *chi.Mux
	maxImageSize int64
	logger       logger.Logger
}

func NewRouter(router *chi.Mux, maxImageSize int64, logger logger.Logger) *Router {
	return &Router{router: router, maxImageSize: maxImageSize, logger: logger}
}

func (r *Router) Init(productUC usecase.ProductUC, categoryUC usecase.CategoryUC, auditUC usecase.AuditUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api", func(api chi.Router) {
		registerProductRoutes(api, NewProductHandler(productUC, r.maxImageSize, r.logger))
		registerCategoryRoutes(api, NewCategoryHandler(categoryUC, r.logger))
		registerAuditRoutes(api, NewAuditHandler(auditUC, r.logger))
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", h.createProduct)
		pr.Get("/", h.listProducts)
		pr.Get("/search", h.searchProducts)
		pr.Get("/price-range", h.productsByPriceRange)
		pr.Get("/category/{categoryId}", h.productsByCategory)
		pr.Get("/{id}", h.getProduct)
		pr.Put("/{id}", h.updateProduct)
		pr.Delete("/{id}", h.deleteProduct)
		pr.Patch("/{id}/stock", h.updateStock)
		pr.Post("/{id}/image", h.uploadProductImage)
	})
}

func registerCategoryRoutes(router chi.Router, h *CategoryHandler) {
	router.Route("/categories", func(ct chi.Router) {
		ct.Get("/", h.listCategories)
		ct.Post("/", h.createCategory)
		ct.Get("/{id}", h.getCategory)
		ct.Put("/{id}", h.updateCategory)
		ct.Delete("/{id}", h.deleteCategory)
	})
}

func registerAuditRoutes(router chi.Router, h *AuditHandler) {
	router.Route("/audit", func(au chi.Router) {
		au.Get("/products", h.latestAudit)
		au.Get("/products/{productId}", h.auditByProduct)
		au.Get("/actions/{action}", h.auditByAction)
	})
}
