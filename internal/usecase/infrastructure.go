package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// ImagesInfra загружает изображение и возвращает адрес, который сохраняется в форме.
type ImagesInfra interface {
	UploadImage(ctx context.Context, file *domain.ImageFile) (string, error)
}
