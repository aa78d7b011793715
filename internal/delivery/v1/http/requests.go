package http

import (
	"strings"

	"github.com/google/uuid"
	"github.com/hfsolutions/catalog-backend/internal/usecase"
	"github.com/hfsolutions/catalog-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// CreateProductRequest — тело POST /api/products.
type CreateProductRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  *uuid.UUID      `json:"categoryId"`
	Rating      *float64        `json:"rating"`
	Image       *string         `json:"image"`
}

// UpdateProductRequest — тело PUT /api/products/{id}.
type UpdateProductRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  *uuid.UUID      `json:"categoryId"`
	Rating      *float64        `json:"rating"`
	Image       *string         `json:"image"`
}

// UpdateStockRequest — тело PATCH /api/products/{id}/stock.
type UpdateStockRequest struct {
	Stock *int `json:"stock"`
}

// CategoryRequest — тело POST/PUT /api/categories.
type CategoryRequest struct {
	Name string `json:"name"`
}

// Validate проверяет ограничения полей. Порядок ошибок соответствует
// порядку объявления полей.
func (req *CreateProductRequest) Validate() []e.FieldError {
	return validateProductFields(req.Title, req.Description, req.Price, req.Stock, req.CategoryID, req.Rating)
}

func (req *UpdateProductRequest) Validate() []e.FieldError {
	return validateProductFields(req.Title, req.Description, req.Price, req.Stock, req.CategoryID, req.Rating)
}

func (req *UpdateStockRequest) Validate() []e.FieldError {
	var fields []e.FieldError
	if req.Stock == nil {
		fields = append(fields, e.FieldError{Field: "stock", Message: "must not be null"})
	} else if *req.Stock < 0 {
		fields = append(fields, e.FieldError{Field: "stock", Message: "must be greater than or equal to 0"})
	}
	return fields
}

func (req *CategoryRequest) Validate() []e.FieldError {
	var fields []e.FieldError

	name := strings.TrimSpace(req.Name)
	if name == "" {
		fields = append(fields, e.FieldError{Field: "name", Message: "must not be blank"})
	} else if len(name) < 3 || len(name) > 50 {
		fields = append(fields, e.FieldError{Field: "name", Message: "size must be between 3 and 50"})
	}

	return fields
}

func validateProductFields(title, description string, price decimal.Decimal,
	stock int, categoryID *uuid.UUID, rating *float64) []e.FieldError {
	var fields []e.FieldError

	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		fields = append(fields, e.FieldError{Field: "title", Message: "must not be blank"})
	} else if len(trimmed) < 3 || len(trimmed) > 100 {
		fields = append(fields, e.FieldError{Field: "title", Message: "size must be between 3 and 100"})
	}

	if len(description) > 1000 {
		fields = append(fields, e.FieldError{Field: "description", Message: "size must be at most 1000"})
	}

	if !price.IsPositive() {
		fields = append(fields, e.FieldError{Field: "price", Message: "must be greater than 0"})
	}

	if stock < 0 {
		fields = append(fields, e.FieldError{Field: "stock", Message: "must be greater than or equal to 0"})
	}

	if categoryID == nil || *categoryID == uuid.Nil {
		fields = append(fields, e.FieldError{Field: "categoryId", Message: "must not be null"})
	}

	if rating != nil && (*rating < 0 || *rating > 5) {
		fields = append(fields, e.FieldError{Field: "rating", Message: "must be between 0 and 5"})
	}

	return fields
}

func (req *CreateProductRequest) toUseCase() *usecase.CreateProductReq {
	return &usecase.CreateProductReq{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  *req.CategoryID,
		Rating:      req.Rating,
		Image:       req.Image,
	}
}

func (req *UpdateProductRequest) toUseCase() *usecase.UpdateProductReq {
	return &usecase.UpdateProductReq{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  *req.CategoryID,
		Rating:      req.Rating,
		Image:       req.Image,
	}
}
