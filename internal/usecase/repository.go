package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// ProductGateway - операции с товарами в удаленном сервисе каталога.
type ProductGateway interface {
	ListProducts(ctx context.Context, collection *domain.Collection) ([]domain.Product, error)
	CreateProduct(ctx context.Context, payload domain.ProductPayload) error
	UpdateProduct(ctx context.Context, id string, payload domain.ProductPayload) error
	DeleteProduct(ctx context.Context, id string) error
}

// CategoryGateway - операции с категориями в удаленном сервисе каталога.
type CategoryGateway interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, payload domain.CategoryPayload) error
	UpdateCategory(ctx context.Context, id string, payload domain.CategoryPayload) error
	DeleteCategory(ctx context.Context, id string) error
}

// ImageRepository сохраняет файл изображения и возвращает ключ объекта.
type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
}

// DeadlineRepository хранит дедлайн распродажи, общий для всех экземпляров.
// Если ключа нет, сохраняет candidate на ttl и возвращает его.
type DeadlineRepository interface {
	GetOrCreate(ctx context.Context, key string, candidate time.Time, ttl time.Duration) (time.Time, error)
}
