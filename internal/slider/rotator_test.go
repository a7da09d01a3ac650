package slider

import (
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deck(n int) []domain.Slide {
	slides := make([]domain.Slide, n)
	for i := range slides {
		slides[i] = domain.Slide{ID: i + 1}
	}
	return slides
}

func receive(t *testing.T, ch <-chan int) int {
	t.Helper()

	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		require.FailNow(t, "no slide change")
		return -1
	}
}

func TestRotator_AdvanceWrapsAround(t *testing.T) {
	for _, n := range []int{2, 3, 5} {
		r := NewRotator(deck(n))
		for i := 0; i < n; i++ {
			r.Advance()
		}
		assert.Equal(t, 0, r.Active(), "deck of %d", n)
	}
}

func TestRotator_SelectSetsIndexExactly(t *testing.T) {
	r := NewRotator(deck(3))
	r.Advance()

	require.NoError(t, r.Select(2))
	assert.Equal(t, 2, r.Active())

	require.NoError(t, r.Select(0))
	assert.Equal(t, 0, r.Active())

	assert.Equal(t, 1, r.Advance())
}

func TestRotator_SelectOutOfRangeKeepsState(t *testing.T) {
	r := NewRotator(deck(3))
	require.NoError(t, r.Select(1))

	assert.ErrorIs(t, r.Select(3), e.ErrSlideOutOfRange)
	assert.ErrorIs(t, r.Select(-1), e.ErrSlideOutOfRange)
	assert.Equal(t, 1, r.Active())
}

func TestRotator_SingleSlideNeverAdvances(t *testing.T) {
	clock := clockwork.NewFakeClock()
	r := NewRotator(deck(1), WithClock(clock))

	r.Start()
	defer r.Stop()

	assert.Equal(t, 0, r.Advance())
	clock.Advance(time.Minute)
	assert.Equal(t, 0, r.Active())
}

func TestRotator_AutoAdvanceOnInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	changes := make(chan int, 8)

	r := NewRotator(deck(3), WithClock(clock), WithObserver(func(i int) { changes <- i }))
	r.Start()
	defer r.Stop()

	clock.Advance(4 * time.Second)
	select {
	case v := <-changes:
		t.Fatalf("advanced to %d before the interval elapsed", v)
	case <-time.After(20 * time.Millisecond):
	}

	clock.Advance(time.Second)
	assert.Equal(t, 1, receive(t, changes))

	clock.Advance(5 * time.Second)
	assert.Equal(t, 2, receive(t, changes))

	clock.Advance(5 * time.Second)
	assert.Equal(t, 0, receive(t, changes))
}

func TestRotator_ManualSelectDoesNotResetTimer(t *testing.T) {
	clock := clockwork.NewFakeClock()
	changes := make(chan int, 8)

	r := NewRotator(deck(3), WithClock(clock), WithInterval(5*time.Second), WithObserver(func(i int) { changes <- i }))
	r.Start()
	defer r.Stop()

	clock.Advance(4 * time.Second)
	require.NoError(t, r.Select(2))
	assert.Equal(t, 2, receive(t, changes))

	// следующий тик приходит через 1 секунду, а не через 5 после выбора
	clock.Advance(time.Second)
	assert.Equal(t, 0, receive(t, changes))
}

func TestRotator_StopCancelsInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	changes := make(chan int, 8)

	r := NewRotator(deck(3), WithClock(clock), WithObserver(func(i int) { changes <- i }))
	r.Start()
	r.Stop()
	r.Stop()

	clock.Advance(time.Minute)
	select {
	case v := <-changes:
		t.Fatalf("advanced to %d after Stop", v)
	case <-time.After(20 * time.Millisecond):
	}
	assert.Equal(t, 0, r.Active())
}

func TestRotator_StateIsACopy(t *testing.T) {
	r := NewRotator(domain.DefaultSlides)

	state := r.State()
	state.Slides[0].Label = "changed"

	assert.Equal(t, "iPhone 14 Series", r.State().Slides[0].Label)
	assert.Len(t, state.Slides, 3)
}

func TestRotator_ObserverSeesChangesInOrder(t *testing.T) {
	for round := 0; round < 200; round++ {
		var (
			mu       sync.Mutex
			lastSeen = -1
		)
		r := NewRotator(deck(8), WithObserver(func(i int) {
			mu.Lock()
			lastSeen = i
			mu.Unlock()
		}))

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(index int) {
				defer wg.Done()
				if index%2 == 0 {
					r.Advance()
					return
				}
				_ = r.Select(index)
			}(i)
		}
		wg.Wait()

		mu.Lock()
		require.Equal(t, r.Active(), lastSeen, "round %d", round)
		mu.Unlock()
	}
}
