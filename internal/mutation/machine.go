// Package mutation реализует последовательную отправку форм создания, изменения и удаления.
package mutation

import (
	"context"
	"fmt"
	"sync"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// Writer выполняет запись сущности в удаленном сервисе.
type Writer[P any] interface {
	Create(ctx context.Context, payload P) error
	Update(ctx context.Context, id string, payload P) error
	Delete(ctx context.Context, id string) error
}

// Outcome - результат последней завершенной операции.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeError:
		return "error"
	default:
		return "none"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Snapshot - состояние формы для отображения.
type Snapshot[F any] struct {
	Form       F       `json:"form"`
	EditingID  string  `json:"editingId,omitempty"`
	Submitting bool    `json:"submitting"`
	Outcome    Outcome `json:"outcome"`
	Error      string  `json:"error,omitempty"`
}

// Config описывает одну форму: пустой шаблон, перевод формы в тело запроса,
// запись в сервис и перечитывание коллекции после успеха.
type Config[F, P any] struct {
	Name      string
	Blank     func() F
	ToPayload func(F) (P, error)
	Writer    Writer[P]
	Refresh   func(ctx context.Context) error
	Logger    logger.Logger
}

// Machine - конечный автомат формы: idle -> submitting -> idle.
// Пока запрос в полете, новые отправки отклоняются с e.ErrBusy, а не ставятся в очередь.
type Machine[F, P any] struct {
	cfg Config[F, P]

	mu         sync.Mutex
	form       F
	editingID  string
	submitting bool
	outcome    Outcome
	lastErr    error
	disposed   bool
}

func NewMachine[F, P any](cfg Config[F, P]) *Machine[F, P] {
	return &Machine[F, P]{
		cfg:  cfg,
		form: cfg.Blank(),
	}
}

func (m *Machine[F, P]) Snapshot() Snapshot[F] {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Snapshot[F]{
		Form:       m.form,
		EditingID:  m.editingID,
		Submitting: m.submitting,
		Outcome:    m.outcome,
	}
	if m.lastErr != nil {
		s.Error = m.lastErr.Error()
	}

	return s
}

// Edit переводит форму в режим редактирования сущности id.
func (m *Machine[F, P]) Edit(id string, form F) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.disposed {
		return
	}
	m.editingID = id
	m.form = form
}

// Cancel сбрасывает форму к пустому шаблону и выходит из режима редактирования.
func (m *Machine[F, P]) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.disposed {
		return
	}
	m.editingID = ""
	m.form = m.cfg.Blank()
}

// UpdateForm меняет снимок формы. Форма остается редактируемой и во время отправки.
func (m *Machine[F, P]) UpdateForm(fn func(*F)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.disposed {
		return
	}
	fn(&m.form)
}

// Submit отправляет форму: создание, если id не выбран, иначе изменение.
// Ошибка валидации не меняет состояние и ничего не отправляет.
// Любой сбой записи возвращается как e.ErrOperationFailed.
func (m *Machine[F, P]) Submit(ctx context.Context) error {
	op := m.cfg.Name + ".Submit"

	m.mu.Lock()
	if err := m.gate(); err != nil {
		m.mu.Unlock()
		return e.Wrap(op, err)
	}

	payload, err := m.cfg.ToPayload(m.form)
	if err != nil {
		m.mu.Unlock()
		return e.Wrap(op, err)
	}

	id := m.editingID
	m.submitting = true
	m.mu.Unlock()

	if id == "" {
		err = m.cfg.Writer.Create(ctx, payload)
	} else {
		err = m.cfg.Writer.Update(ctx, id, payload)
	}

	return m.finish(ctx, op, err, true)
}

// Delete удаляет сущность id. Без подтверждения запрос не отправляется и
// возвращается (false, nil). dispatched сообщает, был ли отправлен запрос.
func (m *Machine[F, P]) Delete(ctx context.Context, id string, confirmed bool) (dispatched bool, err error) {
	op := m.cfg.Name + ".Delete"

	if !confirmed || id == "" {
		return false, nil
	}

	m.mu.Lock()
	if err := m.gate(); err != nil {
		m.mu.Unlock()
		return false, e.Wrap(op, err)
	}
	m.submitting = true
	m.mu.Unlock()

	err = m.cfg.Writer.Delete(ctx, id)
	return true, m.finish(ctx, op, err, false)
}

// Close освобождает форму. Запросы в полете не отменяются, но их завершение
// больше не трогает состояние и не запускает перечитывание.
func (m *Machine[F, P]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disposed = true
}

// gate вызывается под m.mu.
func (m *Machine[F, P]) gate() error {
	if m.disposed {
		return e.ErrDisposed
	}
	if m.submitting {
		return e.ErrBusy
	}

	return nil
}

func (m *Machine[F, P]) finish(ctx context.Context, op string, writeErr error, resetForm bool) error {
	if writeErr != nil {
		failure := fmt.Errorf("%w: %w", e.ErrOperationFailed, writeErr)

		m.mu.Lock()
		defer m.mu.Unlock()

		if m.disposed {
			m.cfg.Logger.Warnf("%s: result dropped, form disposed: %v", op, writeErr)
			return e.Wrap(op, failure)
		}
		m.submitting = false
		m.outcome = OutcomeError
		m.lastErr = failure

		return e.Wrap(op, failure)
	}

	if m.isDisposed() {
		m.cfg.Logger.Warnf("%s: write succeeded after dispose, skipping refresh", op)
		return nil
	}

	// Запись уже прошла, поэтому сбой чтения оставляет прежний список и не делает операцию неудачной.
	if err := m.cfg.Refresh(ctx); err != nil {
		m.cfg.Logger.Warnf("%s: refresh after write failed: %v", op, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.disposed {
		return nil
	}
	if resetForm {
		m.editingID = ""
		m.form = m.cfg.Blank()
	}
	m.submitting = false
	m.outcome = OutcomeSuccess
	m.lastErr = nil

	return nil
}

func (m *Machine[F, P]) isDisposed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.disposed
}
