package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/hfsolutions/catalog-backend/internal/domain"
	"github.com/shopspring/decimal"
)

type ProductUC interface {
	Create(ctx context.Context, req *CreateProductReq) (*ProductRes, error)
	List(ctx context.Context, page PageReq) (*ProductPageRes, error)
	Get(ctx context.Context, id uuid.UUID) (*ProductRes, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateProductReq) (*ProductRes, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateStock(ctx context.Context, id uuid.UUID, req *UpdateStockReq) (*ProductRes, error)
	ByCategory(ctx context.Context, categoryID uuid.UUID, page PageReq) (*ProductPageRes, error)
	Search(ctx context.Context, query string, page PageReq) (*ProductPageRes, error)
	PriceRange(ctx context.Context, min, max decimal.Decimal, page PageReq) (*ProductPageRes, error)
	AttachImage(ctx context.Context, id uuid.UUID, req *UploadImageReq) (*ProductRes, error)
}

type CategoryUC interface {
	List(ctx context.Context) ([]CategoryRes, error)
	Get(ctx context.Context, id uuid.UUID) (*CategoryRes, error)
	Create(ctx context.Context, req *CreateCategoryReq) (*CategoryRes, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateCategoryReq) (*CategoryRes, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AuditUC interface {
	ByProduct(ctx context.Context, productID uuid.UUID) ([]AuditRes, error)
	Latest(ctx context.Context) ([]AuditRes, error)
	ByAction(ctx context.Context, action domain.AuditAction) ([]AuditRes, error)
}
