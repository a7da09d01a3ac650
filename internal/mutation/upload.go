package mutation

import (
	"context"
	"fmt"
	"sync"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
)

// Uploader загружает файл изображения и возвращает его публичный адрес.
type Uploader interface {
	UploadImage(ctx context.Context, file *domain.ImageFile) (string, error)
}

// ImageUpload - одиночная загрузка изображения со своим флагом занятости,
// независимым от отправки формы. Успешный адрес передается в apply.
type ImageUpload struct {
	uploader Uploader
	apply    func(url string)

	mu       sync.Mutex
	busy     bool
	disposed bool
}

func NewImageUpload(uploader Uploader, apply func(url string)) *ImageUpload {
	return &ImageUpload{
		uploader: uploader,
		apply:    apply,
	}
}

func (u *ImageUpload) Busy() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.busy
}

// Upload загружает файл. Пока предыдущая загрузка не завершилась, возвращает e.ErrUploadBusy.
// Ошибка загрузки возвращается вызывающему и не трогает форму.
func (u *ImageUpload) Upload(ctx context.Context, file *domain.ImageFile) (string, error) {
	const op = "ImageUpload.Upload"

	u.mu.Lock()
	if u.disposed {
		u.mu.Unlock()
		return "", e.Wrap(op, e.ErrDisposed)
	}
	if u.busy {
		u.mu.Unlock()
		return "", e.Wrap(op, e.ErrUploadBusy)
	}
	u.busy = true
	u.mu.Unlock()

	url, err := u.uploader.UploadImage(ctx, file)

	u.mu.Lock()
	u.busy = false
	disposed := u.disposed
	u.mu.Unlock()

	if err != nil {
		return "", e.Wrap(op, fmt.Errorf("%w: %w", e.ErrOperationFailed, err))
	}
	if !disposed {
		u.apply(url)
	}

	return url, nil
}

func (u *ImageUpload) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.disposed = true
}
