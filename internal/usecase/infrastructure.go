package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AuditPublisher доставляет событие аудита слушателю.
// Вызов синхронный, но результат записи аудита не влияет на
// завершившуюся бизнес-операцию: ошибки слушатель гасит сам.
type AuditPublisher interface {
	Publish(ctx context.Context, event *ProductAuditEvent)
}

// CacheRepository — best-effort кэш ответов по товарам.
// Промах — это (nil, nil); любые ошибки кэша не должны
// влиять на обработку запроса.
type CacheRepository interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductRes, error)
	SetProduct(ctx context.Context, product *ProductRes) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type ImagesInfra interface {
	UploadImage(ctx context.Context, req *UploadImageReq) (string, error)
	CleanupImage(key string)
}
