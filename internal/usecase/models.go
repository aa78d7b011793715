package usecase

import (
	"github.com/google/uuid"
	"github.com/hfsolutions/catalog-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// PRODUCT USECASE

// CreateProductReq — запрос на создание товара.
type CreateProductReq struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  uuid.UUID
	Rating      *float64
	Image       *string
}

// UpdateProductReq — запрос на полное обновление товара.
type UpdateProductReq struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  uuid.UUID
	Rating      *float64
	Image       *string
}

// UpdateStockReq — запрос на изменение остатка.
type UpdateStockReq struct {
	Stock int
}

// PageReq — параметры страницы (нумерация с нуля).
type PageReq struct {
	Page int
	Size int
}

// Offset возвращает смещение выборки для текущей страницы.
func (p PageReq) Offset() int {
	return p.Page * p.Size
}

// RatingRes — оценка товара в ответе.
type RatingRes struct {
	Rate  *float64
	Count int
}

// ProductRes — DTO товара для внешнего использования.
type ProductRes struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Price        decimal.Decimal
	Stock        int
	CategoryID   uuid.UUID
	CategoryName string
	Rating       RatingRes
	Image        *string
}

// ProductPageRes — страница товаров.
type ProductPageRes struct {
	Content       []ProductRes
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

// ProductWithCategory — строка выборки товара вместе с именем категории.
type ProductWithCategory struct {
	Product      domain.Product
	CategoryName string
}

// CATEGORY USECASE

type CreateCategoryReq struct {
	Name string
}

type UpdateCategoryReq struct {
	Name string
}

type CategoryRes struct {
	ID   uuid.UUID
	Name string
}

// AUDIT

// ProductAuditEvent — событие аудита, публикуемое после успешной мутации.
type ProductAuditEvent struct {
	ProductID uuid.UUID
	Action    domain.AuditAction
	Details   map[string]any
}

// AuditRes — запись аудита для внешнего использования.
type AuditRes struct {
	ID        string
	ProductID uuid.UUID
	Action    domain.AuditAction
	Timestamp string
	Details   map[string]any
}

// INFRASTRUCTURE

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Name     string // оригинальное имя файла (для логов)
}

// UploadImageReq — запрос на загрузку изображения товара.
type UploadImageReq struct {
	ProductID uuid.UUID
	Image     ProductImage
}

// MAPPERS

// ToProductRes переводит сущность товара в DTO ответа.
func ToProductRes(product *domain.Product, categoryName string) *ProductRes {
	if product == nil {
		return nil
	}

	return &ProductRes{
		ID:           product.ID,
		Title:        product.Title,
		Description:  product.Description,
		Price:        product.Price,
		Stock:        product.Stock,
		CategoryID:   product.CategoryID,
		CategoryName: categoryName,
		Rating: RatingRes{
			Rate:  product.Rating.Rate,
			Count: product.Rating.Count,
		},
		Image: product.Image,
	}
}

// ToProductPageRes собирает страницу из строк выборки.
func ToProductPageRes(rows []ProductWithCategory, page PageReq, total int64) *ProductPageRes {
	content := make([]ProductRes, 0, len(rows))
	for i := range rows {
		content = append(content, *ToProductRes(&rows[i].Product, rows[i].CategoryName))
	}

	totalPages := 0
	if page.Size > 0 {
		totalPages = int((total + int64(page.Size) - 1) / int64(page.Size))
	}

	return &ProductPageRes{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// ToCategoryRes переводит сущность категории в DTO ответа.
func ToCategoryRes(category *domain.Category) *CategoryRes {
	if category == nil {
		return nil
	}

	return &CategoryRes{
		ID:   category.ID,
		Name: category.Name,
	}
}

// ToAuditRes переводит запись аудита в DTO ответа.
// Метка времени сериализуется в RFC3339 (UTC).
func ToAuditRes(audit *domain.ProductAudit) *AuditRes {
	if audit == nil {
		return nil
	}

	return &AuditRes{
		ID:        audit.ID,
		ProductID: audit.ProductID,
		Action:    audit.Action,
		Timestamp: audit.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Details:   audit.Details,
	}
}

func NewProductAuditEvent(productID uuid.UUID, action domain.AuditAction, details map[string]any) *ProductAuditEvent {
	return &ProductAuditEvent{
		ProductID: productID,
		Action:    action,
		Details:   details,
	}
}

func NewUploadImageReq(productID uuid.UUID, image ProductImage) *UploadImageReq {
	return &UploadImageReq{
		ProductID: productID,
		Image:     image,
	}
}

func NewProductImage(data []byte, mimeType string, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Name:     name,
	}
}
