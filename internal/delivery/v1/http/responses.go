package http

import (
	"github.com/google/uuid"
	"github.com/hfsolutions/catalog-backend/internal/domain"
	"github.com/hfsolutions/catalog-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

type RatingResponse struct {
	Rate  *float64 `json:"rate"`
	Count int      `json:"count"`
}

type ProductResponse struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	CategoryID   uuid.UUID       `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Rating       RatingResponse  `json:"rating"`
	Image        *string         `json:"image"`
}

type ProductPageResponse struct {
	Content       []ProductResponse `json:"content"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
}

type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type AuditResponse struct {
	ID        string             `json:"id"`
	ProductID uuid.UUID          `json:"productId"`
	Action    domain.AuditAction `json:"action"`
	Timestamp string             `json:"timestamp"`
	Details   map[string]any     `json:"details"`
}

func toProductResponse(res *usecase.ProductRes) *ProductResponse {
	return &ProductResponse{
		ID:           res.ID,
		Title:        res.Title,
		Description:  res.Description,
		Price:        res.Price,
		Stock:        res.Stock,
		CategoryID:   res.CategoryID,
		CategoryName: res.CategoryName,
		Rating: RatingResponse{
			Rate:  res.Rating.Rate,
			Count: res.Rating.Count,
		},
		Image: res.Image,
	}
}

func toProductPageResponse(page *usecase.ProductPageRes) *ProductPageResponse {
	content := make([]ProductResponse, 0, len(page.Content))
	for i := range page.Content {
		content = append(content, *toProductResponse(&page.Content[i]))
	}

	return &ProductPageResponse{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
}

func toCategoryResponse(res *usecase.CategoryRes) *CategoryResponse {
	return &CategoryResponse{
		ID:   res.ID,
		Name: res.Name,
	}
}

func toCategoryResponses(res []usecase.CategoryRes) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(res))
	for i := range res {
		result = append(result, *toCategoryResponse(&res[i]))
	}
	return result
}

func toAuditResponses(res []usecase.AuditRes) []AuditResponse {
	result := make([]AuditResponse, 0, len(res))
	for _, a := range res {
		result = append(result, AuditResponse{
			ID:        a.ID,
			ProductID: a.ProductID,
			Action:    a.Action,
			Timestamp: a.Timestamp,
			Details:   a.Details,
		})
	}
	return result
}
