package converter

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID        uuid.UUID  `db:"id"`
	Name      string     `db:"name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
// Оценка товара встроена в строку (rating_rate, rating_count).
type ProductModel struct {
	ID          uuid.UUID       `db:"id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Stock       int             `db:"stock"`
	CategoryID  uuid.UUID       `db:"category_id"`
	RatingRate  *float64        `db:"rating_rate"`
	RatingCount int             `db:"rating_count"`
	Image       *string         `db:"image"`
	Deleted     bool            `db:"deleted"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   *time.Time      `db:"updated_at"`
}
