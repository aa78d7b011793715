package converter

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductRedisModel struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	CategoryID   uuid.UUID       `json:"category_id"`
	CategoryName string          `json:"category_name"`
	RatingRate   *float64        `json:"rating_rate"`
	RatingCount  int             `json:"rating_count"`
	Image        *string         `json:"image"`
}
