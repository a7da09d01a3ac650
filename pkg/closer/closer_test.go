package closer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloser_ClosesInReverseOrder(t *testing.T) {
	c := NewCloser(0, logger.NewNop())

	var order []string
	c.AddFunc("first", func() { order = append(order, "first") })
	c.AddFunc("second", func() { order = append(order, "second") })
	c.AddFunc("third", func() { order = append(order, "third") })

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []string{"third", "second", "first"}, order)
}

func TestCloser_CollectsErrors(t *testing.T) {
	c := NewCloser(0, logger.NewNop())

	c.Add("redis", func(context.Context) error { return errors.New("connection reset") })
	c.AddFunc("scheduler", func() {})

	err := c.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis: connection reset")
}

func TestCloser_CloseIsIdempotent(t *testing.T) {
	c := NewCloser(0, logger.NewNop())

	calls := 0
	c.AddFunc("once", func() { calls++ })

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCloser_ForcesRemainingOnTimeout(t *testing.T) {
	c := NewCloser(time.Second, logger.NewNop())

	var (
		mu     sync.Mutex
		forced bool
	)
	c.Add("early", func(ctx context.Context) error {
		mu.Lock()
		forced = true
		mu.Unlock()
		return nil
	})

	block := make(chan struct{})
	defer close(block)
	c.Add("stuck", func(ctx context.Context) error {
		<-block
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shutdown interrupted")

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, forced)
}
