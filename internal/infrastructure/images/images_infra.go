package images

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hfsolutions/catalog-backend/internal/cfg"
	"github.com/hfsolutions/catalog-backend/internal/domain"
	"github.com/hfsolutions/catalog-backend/internal/infrastructure"
	"github.com/hfsolutions/catalog-backend/internal/usecase"
	"github.com/hfsolutions/catalog-backend/pkg/e"
	"github.com/hfsolutions/catalog-backend/pkg/jitter"
	"github.com/hfsolutions/catalog-backend/pkg/logger"
)

const (
	cleanupAttempts = 3
	cleanupMaxWait  = 30 * time.Second
)

// cleanupDelay задаёт паузы между повторами удаления объекта.
var cleanupDelay = jitter.Backoff{Base: time.Second, Max: cleanupMaxWait, Jitter: 0.5}

// ImagesInfrastructure управляет загрузкой и очисткой изображений товаров в MinIO.
type ImagesInfrastructure struct {
	imageRepo   usecase.ImageRepository
	cfg         *cfg.MinIOCfg
	logger      logger.Logger
	shutdownCtx context.Context
	wg          sync.WaitGroup
}

func NewImagesInfrastructure(imageRepo usecase.ImageRepository, cfg *cfg.MinIOCfg,
	logger logger.Logger, shutdownCtx context.Context) *ImagesInfrastructure {
	return &ImagesInfrastructure{
		imageRepo:   imageRepo,
		cfg:         cfg,
		logger:      logger,
		shutdownCtx: shutdownCtx,
	}
}

// UploadImage загружает изображение товара и возвращает ключ объекта.
// Ключ имеет вид products/{productID}/{imageID}.{ext}.
func (m *ImagesInfrastructure) UploadImage(ctx context.Context, req *usecase.UploadImageReq) (string, error) {
	const op = "ImagesInfrastructure.UploadImage"

	ext, err := infrastructure.GetExtensionFromMIME(req.Image.MimeType)
	if err != nil {
		return "", e.Wrap(op, fmt.Errorf("invalid mime type %s for %s: %w", req.Image.MimeType, req.Image.Name, err))
	}

	imageID := uuid.NewString()
	objKey := fmt.Sprintf("products/%s/%s.%s", req.ProductID, imageID, ext)
	image := domain.NewImage(imageID, m.cfg.BucketName, objKey, req.Image.Data, req.Image.MimeType)

	key, err := m.imageRepo.Upload(ctx, image)
	if err != nil {
		return "", e.Wrap(op, fmt.Errorf("upload %s failed: %w", req.Image.Name, err))
	}

	return key, nil
}

// CleanupImage запускает фоновое удаление объекта из MinIO.
// Используется как компенсация, когда транзакция после загрузки не зафиксировалась.
func (m *ImagesInfrastructure) CleanupImage(key string) {
	if key == "" {
		return
	}
	m.wg.Add(1)
	go m.cleanupUploadedKey(key)
}

// cleanupUploadedKey удаляет объект с экспоненциальной задержкой и jitter.
func (m *ImagesInfrastructure) cleanupUploadedKey(key string) {
	defer m.wg.Done()
	const op = "ImagesInfrastructure.cleanupUploadedKey"
	m.logger.Infof("%s: Cleaning up uploaded key %s", op, key)

	ctx, cancel := context.WithTimeout(m.shutdownCtx, cleanupMaxWait)
	defer cancel()

	for attempt := 0; attempt < cleanupAttempts; attempt++ {
		if err := m.imageRepo.Delete(ctx, key); err == nil {
			return
		}

		select {
		case <-ctx.Done():
			m.logger.Warnf("cleanup interrupted by shutdown, key=%v", key)
			return
		default:
		}

		if attempt < cleanupAttempts-1 {
			sleepTime := cleanupDelay.Delay(attempt)

			select {
			case <-time.After(sleepTime):
			case <-ctx.Done():
				m.logger.Warnf("cleanup interrupted by shutdown during backoff, key=%v", key)
				return
			}
		}
	}

	m.logger.Errorf(nil, "%s: failed to clean up key %s after %d attempts", op, key, cleanupAttempts)
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *ImagesInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("image cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}
