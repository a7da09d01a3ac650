package minio

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/infrastructure"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/google/uuid"
)

const objectPrefix = "catalog"

// MinioInfrastructure загружает изображения каталога напрямую в MinIO
// вместо POST /api/upload сервиса каталога.
type MinioInfrastructure struct {
	minioRepo usecase.ImageRepository
	cfg       *cfg.MinIOCfg
	logger    logger.Logger
}

func NewMinioInfrastructure(minioRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger) *MinioInfrastructure {
	return &MinioInfrastructure{
		minioRepo: minioRepo,
		cfg:       cfg,
		logger:    logger,
	}
}

// UploadImage сохраняет файл под случайным ключом и возвращает публичный адрес объекта.
// Тип определяется по содержимому, а не по заголовку клиента.
func (m *MinioInfrastructure) UploadImage(ctx context.Context, file *domain.ImageFile) (string, error) {
	const op = "MinioInfrastructure.UploadImage"

	if len(file.Data) == 0 {
		return "", e.Wrap(op, e.ErrNoImage)
	}

	mimeType := http.DetectContentType(file.Data[:min(len(file.Data), 512)])
	ext, err := infrastructure.GetExtensionFromMIME(mimeType)
	if err != nil {
		return "", e.Wrap(op, fmt.Errorf("%s (%s): %w", file.Name, mimeType, err))
	}

	imageID := uuid.NewString()
	objKey := fmt.Sprintf("%s/%s.%s", objectPrefix, imageID, ext)

	key, err := m.minioRepo.Upload(ctx, domain.NewImage(imageID, m.cfg.BucketName, objKey, file.Data, mimeType))
	if err != nil {
		return "", e.Wrap(op, err)
	}

	m.logger.Infof("%s: stored %s as %s", op, file.Name, key)
	return fmt.Sprintf("%s/%s/%s", m.cfg.PublicURL, m.cfg.BucketName, key), nil
}
