package minio

import (
	"bytes"
	"context"

	"github.com/hfsolutions/catalog-backend/internal/cfg"
	"github.com/hfsolutions/catalog-backend/internal/domain"
	"github.com/hfsolutions/catalog-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ImageRepo хранит изображения товаров в одном бакете MinIO.
type ImageRepo struct {
	client *minio.Client
	bucket string
}

func NewImageRepo(client *minio.Client, cfg *cfg.MinIOCfg) *ImageRepo {
	return &ImageRepo{
		client: client,
		bucket: cfg.BucketName,
	}
}

// Upload кладёт изображение под его ключом и возвращает ключ объекта.
// Размер известен заранее (картинка целиком в памяти), поэтому
// multipart-загрузка MinIO не задействуется.
func (r *ImageRepo) Upload(ctx context.Context, image *domain.Image) (string, error) {
	info, err := r.client.PutObject(ctx, r.bucket, image.ObjectKey,
		bytes.NewReader(image.Bytes), int64(len(image.Bytes)),
		minio.PutObjectOptions{ContentType: image.ContentType})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}

// Delete удаляет объект по ключу. Отсутствие объекта не считается ошибкой.
func (r *ImageRepo) Delete(ctx context.Context, key string) error {
	if err := r.client.RemoveObject(ctx, r.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
