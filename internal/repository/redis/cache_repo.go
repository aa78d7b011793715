package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/google/uuid"
	"github.com/hfsolutions/catalog-backend/internal/cfg"
	"github.com/hfsolutions/catalog-backend/internal/repository/redis/converter"
	"github.com/hfsolutions/catalog-backend/internal/usecase"
	"github.com/hfsolutions/catalog-backend/pkg/clients"
	"github.com/hfsolutions/catalog-backend/pkg/e"
	"github.com/hfsolutions/catalog-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

// CacheRepo кэширует карточки товаров в Redis. Кэш best-effort:
// любая ошибка Redis логируется и не прерывает обработку запроса.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ProductConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ProductConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProduct возвращает закэшированный товар по ID.
// Промах кэша не является ошибкой: возвращается (nil, nil).
func (r *CacheRepo) GetProduct(ctx context.Context, id uuid.UUID) (*usecase.ProductRes, error) {
	key := r.productKey(id)

	data, err := r.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil // cache miss
		}

		r.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.ProductRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := r.client.Client.Del(context.Background(), key).Err(); err != nil {
			r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil // повреждённая запись равносильна промаху
	}

	if model.ID != id {
		r.logger.Warnf("Cache ID mismatch: key_id: %s, model_id: %s", id, model.ID)
		if err := r.client.Client.Del(context.Background(), key).Err(); err != nil {
			r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil
	}

	return r.conv.ToUseCase(&model), nil
}

// SetProduct кэширует товар с TTL из конфигурации.
// Ошибки сериализации и записи логируются и проглатываются.
func (r *CacheRepo) SetProduct(ctx context.Context, product *usecase.ProductRes) error {
	model := r.conv.ToRedisModel(product)

	data, err := json.Marshal(model)
	if err != nil {
		r.logger.Warnf("Failed to marshal product for caching (Product ID: %s): %v",
			model.ID, e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := r.client.Client.Set(ctx, r.productKey(model.ID), data, r.cfg.ProductTTL).Err(); err != nil {
		r.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// DeleteProduct инвалидирует запись кэша товара
func (r *CacheRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Client.Del(ctx, r.productKey(id)).Err(); err != nil {
		r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// productKey возвращает Redis-ключ для одного товара
func (r *CacheRepo) productKey(id uuid.UUID) string {
	return fmt.Sprintf("product:%s", id)
}
