package usecase

import (
	"context"
	"sync"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// Collection - локальная копия списка из сервиса каталога.
// Список заменяется целиком; при ошибке чтения остается прежний.
type Collection[T any] struct {
	name   string
	fetch  func(ctx context.Context) ([]T, error)
	logger logger.Logger

	mu     sync.RWMutex
	items  []T
	loaded bool
	closed bool
}

func NewCollection[T any](name string, fetch func(ctx context.Context) ([]T, error), logger logger.Logger) *Collection[T] {
	return &Collection[T]{
		name:   name,
		fetch:  fetch,
		logger: logger,
	}
}

// Refresh перечитывает список. Если коллекция уже закрыта, результат отбрасывается.
func (c *Collection[T]) Refresh(ctx context.Context) error {
	op := c.name + ".Refresh"

	items, err := c.fetch(ctx)
	if err != nil {
		c.logger.Warnf("%s: keeping %d stale items: %v", op, len(c.Items()), err)
		return e.Wrap(op, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		c.logger.Debugf("%s: collection closed, result dropped", op)
		return nil
	}
	c.items = items
	c.loaded = true

	return nil
}

// Items возвращает копию текущего списка.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Loaded сообщает, было ли хотя бы одно успешное чтение.
func (c *Collection[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *Collection[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
