package countdown

import (
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/jonboulle/clockwork"
)

const defaultPeriod = time.Second

// Observer получает каждое новое значение остатка.
// Вызывается из горутины планировщика и не должен вызывать Stop.
type Observer func(domain.TimeLeft)

type Option func(*Scheduler)

// WithClock подменяет источник времени (в тестах - clockwork.FakeClock).
func WithClock(clock clockwork.Clock) Option {
	return func(s *Scheduler) { s.clock = clock }
}

func WithPeriod(period time.Duration) Option {
	return func(s *Scheduler) {
		if period > 0 {
			s.period = period
		}
	}
}

func WithObserver(o Observer) Option {
	return func(s *Scheduler) { s.observer = o }
}

// Scheduler пересчитывает остаток до дедлайна на каждом тике.
// Первое значение считается сразу при создании, до первого тика.
// После наступления дедлайна продолжает публиковать нулевой остаток.
type Scheduler struct {
	deadline time.Time
	period   time.Duration
	clock    clockwork.Clock
	observer Observer

	mu      sync.Mutex
	current domain.TimeLeft
	stop    chan struct{}
	done    chan struct{}
}

func NewScheduler(deadline time.Time, opts ...Option) *Scheduler {
	s := &Scheduler{
		deadline: deadline,
		period:   defaultPeriod,
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.current = Compute(s.deadline, s.clock.Now())
	return s
}

func (s *Scheduler) Deadline() time.Time {
	return s.deadline
}

// Current возвращает последнее опубликованное значение.
func (s *Scheduler) Current() domain.TimeLeft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Start запускает тики. Повторный вызов на работающем планировщике ничего не делает.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop != nil {
		return
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	ticker := s.clock.NewTicker(s.period)

	go s.run(ticker, s.stop, s.done)
}

// Stop останавливает тики и дожидается выхода горутины:
// после возврата из Stop наблюдатель больше не вызывается.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	if stop == nil {
		return
	}

	close(stop)
	<-done
}

func (s *Scheduler) run(ticker clockwork.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			// тик и остановка могли прийти одновременно
			select {
			case <-stop:
				return
			default:
			}

			s.publish(Compute(s.deadline, s.clock.Now()))
		}
	}
}

func (s *Scheduler) publish(left domain.TimeLeft) {
	s.mu.Lock()
	s.current = left
	observer := s.observer
	s.mu.Unlock()

	if observer != nil {
		observer(left)
	}
}
