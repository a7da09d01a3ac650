// Package slider управляет активным баннером hero-блока.
package slider

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jonboulle/clockwork"
)

const defaultInterval = 5 * time.Second

type Option func(*Rotator)

func WithClock(clock clockwork.Clock) Option {
	return func(r *Rotator) { r.clock = clock }
}

func WithInterval(interval time.Duration) Option {
	return func(r *Rotator) {
		if interval > 0 {
			r.interval = interval
		}
	}
}

// WithObserver задает функцию, которая вызывается при каждой смене активного индекса.
// Вызовы идут в порядке смены индекса; observer не должен вызывать Advance или Select.
func WithObserver(o func(index int)) Option {
	return func(r *Rotator) { r.observer = o }
}

// Rotator хранит неизменяемую колоду и индекс активного слайда.
// Автоматическая прокрутка идет по кругу; ручной выбор не сдвигает следующий автоматический тик.
type Rotator struct {
	slides   []domain.Slide
	interval time.Duration
	clock    clockwork.Clock
	observer func(int)

	// notifyMu держится на время смены индекса и вызова observer.
	notifyMu sync.Mutex

	mu     sync.Mutex
	active int
	stop   chan struct{}
	done   chan struct{}
}

func NewRotator(slides []domain.Slide, opts ...Option) *Rotator {
	r := &Rotator{
		slides:   slices.Clone(slides),
		interval: defaultInterval,
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Rotator) Len() int {
	return len(r.slides)
}

func (r *Rotator) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// State возвращает копию колоды и активный индекс.
func (r *Rotator) State() domain.SlideState {
	return domain.SlideState{
		Slides:      slices.Clone(r.slides),
		ActiveIndex: r.Active(),
	}
}

// Advance переключает на следующий слайд по кругу. На колоде из 0 или 1 слайда ничего не делает.
func (r *Rotator) Advance() int {
	if len(r.slides) <= 1 {
		return r.Active()
	}

	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()

	r.mu.Lock()
	r.active = (r.active + 1) % len(r.slides)
	active := r.active
	r.mu.Unlock()

	r.notify(active)
	return active
}

// Select делает активным слайд index. Индекс вне колоды отклоняется, состояние не меняется.
func (r *Rotator) Select(index int) error {
	if index < 0 || index >= len(r.slides) {
		return e.Wrap(fmt.Sprintf("index %d of %d", index, len(r.slides)), e.ErrSlideOutOfRange)
	}

	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()

	r.mu.Lock()
	r.active = index
	r.mu.Unlock()

	r.notify(index)
	return nil
}

// Start запускает автоматическую прокрутку. Для колоды из 0 или 1 слайда таймер не создается.
func (r *Rotator) Start() {
	if len(r.slides) <= 1 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stop != nil {
		return
	}

	r.stop = make(chan struct{})
	r.done = make(chan struct{})
	ticker := r.clock.NewTicker(r.interval)

	go r.run(ticker, r.stop, r.done)
}

// Stop останавливает прокрутку и ждет выхода горутины.
func (r *Rotator) Stop() {
	r.mu.Lock()
	stop, done := r.stop, r.done
	r.stop, r.done = nil, nil
	r.mu.Unlock()

	if stop == nil {
		return
	}

	close(stop)
	<-done
}

func (r *Rotator) run(ticker clockwork.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			select {
			case <-stop:
				return
			default:
			}

			r.Advance()
		}
	}
}

func (r *Rotator) notify(index int) {
	if r.observer != nil {
		r.observer(index)
	}
}
