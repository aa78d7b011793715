package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category описывает категорию товара. Имя уникально без учёта регистра.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewCategory(name string) *Category {
	return &Category{
		ID:   uuid.New(),
		Name: name,
	}
}
