package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rating описывает оценку товара. Rate может отсутствовать,
// Count живёт только вместе со своим товаром.
type Rating struct {
	Rate  *float64
	Count int
}

func NewRating(rate *float64, count int) Rating {
	return Rating{
		Rate:  rate,
		Count: count,
	}
}

// Product описывает товар каталога.
// Удаление товара логическое: запись помечается Deleted и
// становится невидимой для выборок, но физически не удаляется.
type Product struct {
	ID          uuid.UUID
	Title       string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  uuid.UUID
	Rating      Rating
	Image       *string
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewProduct(title, description string, price decimal.Decimal, stock int, categoryID uuid.UUID, rating Rating, image *string) *Product {
	return &Product{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Price:       price,
		Stock:       stock,
		CategoryID:  categoryID,
		Rating:      rating,
		Image:       image,
		Deleted:     false,
	}
}
