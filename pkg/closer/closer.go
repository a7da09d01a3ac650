package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/pkg/logger"
)

const defaultForcedTimeout = 2 * time.Second

// Func - функция освобождения ресурса.
type Func func(ctx context.Context) error

type entry struct {
	name string
	fn   Func
}

// Closer освобождает зарегистрированные ресурсы в обратном порядке (LIFO).
// Повторный вызов Close ничего не делает и возвращает результат первого.
type Closer struct {
	mu            sync.Mutex
	entries       []entry
	once          sync.Once
	err           error
	forcedTimeout time.Duration
	logger        logger.Logger
}

// NewCloser создает Closer. forcedTimeout - сколько времени дается ресурсам,
// не успевшим закрыться до отмены контекста Close. Ноль означает значение по умолчанию.
func NewCloser(forcedTimeout time.Duration, logger logger.Logger) *Closer {
	if forcedTimeout <= 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{
		forcedTimeout: forcedTimeout,
		logger:        logger,
	}
}

// Add регистрирует ресурс под именем name.
func (c *Closer) Add(name string, f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry{name: name, fn: f})
}

// AddFunc регистрирует функцию без контекста и без ошибки (остановка таймеров и т.п.).
func (c *Closer) AddFunc(name string, f func()) {
	c.Add(name, func(context.Context) error {
		f()
		return nil
	})
}

// Close закрывает ресурсы по одному в порядке LIFO.
// Если ctx отменяется раньше, оставшиеся ресурсы закрываются параллельно с forcedTimeout.
func (c *Closer) Close(ctx context.Context) error {
	c.once.Do(func() {
		c.mu.Lock()
		entries := append([]entry(nil), c.entries...)
		c.mu.Unlock()

		c.err = c.close(ctx, entries)
	})

	return c.err
}

func (c *Closer) close(ctx context.Context, entries []entry) error {
	var errs []string

	for i := len(entries) - 1; i >= 0; i-- {
		en := entries[i]
		done := make(chan error, 1)
		go func() {
			done <- en.fn(ctx)
		}()

		select {
		case err := <-done:
			if err != nil {
				errs = append(errs, fmt.Sprintf("[!] %s: %v", en.name, err))
				continue
			}
			c.logger.Infof("%s closed", en.name)
		case <-ctx.Done():
			// en.fn уже запущена, поэтому принудительно закрываем только то, что до нее
			errs = append(errs, fmt.Sprintf("[!] %s: %v", en.name, ctx.Err()))
			errs = append(errs, c.forceClose(entries[:i])...)

			return fmt.Errorf(
				"shutdown interrupted after %d/%d resources:\n%s",
				len(entries)-1-i,
				len(entries),
				strings.Join(errs, "\n"),
			)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(errs, "\n"))
	}

	return nil
}

func (c *Closer) forceClose(entries []entry) []string {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []string
	)

	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	for _, en := range entries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := en.fn(ctx); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Sprintf("[FORCED] %s: %v", en.name, err))
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return errs
}
