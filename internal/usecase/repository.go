package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/hfsolutions/catalog-backend/internal/domain"
	"github.com/shopspring/decimal"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// GetByID возвращает товар независимо от флага Deleted.
	// Видимость удалённых записей решается на уровне use case.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListActive(ctx context.Context, page PageReq) ([]ProductWithCategory, int64, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID, page PageReq) ([]ProductWithCategory, int64, error)
	SearchByTitle(ctx context.Context, query string, page PageReq) ([]ProductWithCategory, int64, error)
	ListByPriceRange(ctx context.Context, min, max decimal.Decimal, page PageReq) ([]ProductWithCategory, int64, error)
	ExistsActiveByCategory(ctx context.Context, categoryID uuid.UUID) (bool, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	ExistsByNameIgnoreCase(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AuditRepository interface {
	Insert(ctx context.Context, audit *domain.ProductAudit) (*domain.ProductAudit, error)
	ByProduct(ctx context.Context, productID uuid.UUID) ([]domain.ProductAudit, error)
	Latest(ctx context.Context, limit int) ([]domain.ProductAudit, error)
	ByAction(ctx context.Context, action domain.AuditAction) ([]domain.ProductAudit, error)
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}
