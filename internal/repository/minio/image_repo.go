package minio

import (
	"bytes"
	"context"
	"io"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ObjectStorage - часть клиента MinIO, которая нужна репозиторию.
type ObjectStorage interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// ImageRepo реализует репозиторий изображений поверх MinIO.
type ImageRepo struct {
	storage ObjectStorage
}

func NewImageRepo(storage ObjectStorage) *ImageRepo {
	return &ImageRepo{storage: storage}
}

// Upload кладет изображение в бакет image.Bucket и возвращает ключ объекта.
func (i *ImageRepo) Upload(ctx context.Context, image *domain.Image) (string, error) {
	info, err := i.storage.PutObject(ctx, image.Bucket, image.ObjectKey, bytes.NewReader(image.Bytes), image.Size, minio.PutObjectOptions{
		ContentType: image.ContentType,
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}
