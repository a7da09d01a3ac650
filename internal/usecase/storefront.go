package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/catalog"
	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/countdown"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/slider"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

type sections struct {
	flash   []domain.Product
	best    []domain.Product
	explore []domain.Product
}

// StorefrontUseCase собирает главную страницу витрины и сводку админки.
type StorefrontUseCase struct {
	products  ProductGateway
	deadlines DeadlineRepository
	cfg       *cfg.StorefrontCfg
	clock     clockwork.Clock
	logger    logger.Logger

	categories  *Collection[domain.Category]
	allProducts *Collection[domain.Product]
	rotator     *slider.Rotator

	mu        sync.RWMutex
	sections  sections
	scheduler *countdown.Scheduler
	started   bool
	stopped   bool
}

func NewStorefrontUC(
	products ProductGateway,
	categories CategoryGateway,
	deadlines DeadlineRepository,
	cfg *cfg.StorefrontCfg,
	clock clockwork.Clock,
	logger logger.Logger,
) *StorefrontUseCase {
	allProducts := NewCollection("StorefrontProducts", func(ctx context.Context) ([]domain.Product, error) {
		return products.ListProducts(ctx, nil)
	}, logger)

	return &StorefrontUseCase{
		products:    products,
		deadlines:   deadlines,
		cfg:         cfg,
		clock:       clock,
		logger:      logger,
		categories:  NewCollection("StorefrontCategories", categories.ListCategories, logger),
		allProducts: allProducts,
		rotator:     slider.NewRotator(domain.DefaultSlides, slider.WithClock(clock), slider.WithInterval(cfg.SlideInterval)),
	}
}

// Start определяет дедлайн распродажи и запускает таймер обратного отсчета и прокрутку слайдов.
// Если хранилище дедлайнов недоступно, дедлайн отсчитывается от текущего момента.
// Повторный Start и Start после Stop ничего не делают.
func (s *StorefrontUseCase) Start(ctx context.Context) {
	const op = "StorefrontUseCase.Start"

	s.mu.Lock()
	if s.started || s.stopped {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	candidate := s.clock.Now().Add(s.cfg.FlashSaleDuration)
	deadline, err := s.deadlines.GetOrCreate(ctx, s.cfg.DeadlineKey, candidate, s.cfg.FlashSaleDuration)
	if err != nil {
		s.logger.Warnf("%s: using local flash sale deadline: %v", op, err)
		deadline = candidate
	}

	scheduler := countdown.NewScheduler(deadline,
		countdown.WithClock(s.clock),
		countdown.WithPeriod(s.cfg.CountdownTick),
	)

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.scheduler = scheduler
	scheduler.Start()
	s.rotator.Start()
	s.mu.Unlock()

	s.logger.Infof("flash sale ends at %s", deadline.Format(time.RFC3339))
}

// Stop останавливает таймеры; после возврата ни один тик уже не сработает,
// а запросы, завершившиеся позже, не меняют данные витрины.
func (s *StorefrontUseCase) Stop() {
	s.mu.Lock()
	s.stopped = true
	scheduler := s.scheduler
	s.mu.Unlock()

	if scheduler != nil {
		scheduler.Stop()
	}
	s.rotator.Stop()
	s.categories.Close()
	s.allProducts.Close()
}

// Home перечитывает секции и категории. Три секции читаются вместе и заменяются
// только при успехе всех трех; при ошибке отдаются последние успешные данные.
func (s *StorefrontUseCase) Home(ctx context.Context) (*domain.HomePage, error) {
	const op = "StorefrontUseCase.Home"

	categoriesDone := make(chan error, 1)
	go func() {
		categoriesDone <- s.categories.Refresh(ctx)
	}()

	fresh, err := s.fetchSections(ctx)
	if err != nil {
		s.logger.Warnf("%s: serving stale sections: %v", op, err)
	} else {
		s.mu.Lock()
		if s.stopped {
			s.logger.Debugf("%s: storefront stopped, sections dropped", op)
		} else {
			s.sections = fresh
		}
		s.mu.Unlock()
	}

	if err := <-categoriesDone; err != nil {
		s.logger.Warnf("%s: serving stale categories: %v", op, err)
	}

	s.mu.RLock()
	current := s.sections
	s.mu.RUnlock()

	return &domain.HomePage{
		Flash:      nonNil(current.flash),
		Best:       nonNil(current.best),
		Explore:    nonNil(current.explore),
		Categories: catalog.CategoryViews(s.categories.Items()),
		Countdown:  s.Countdown(),
		Slides:     s.rotator.State(),
	}, nil
}

func (s *StorefrontUseCase) fetchSections(ctx context.Context) (sections, error) {
	const op = "StorefrontUseCase.fetchSections"

	var out sections
	g, gctx := errgroup.WithContext(ctx)

	fetch := func(c domain.Collection, dst *[]domain.Product) {
		g.Go(func() error {
			products, err := s.products.ListProducts(gctx, &c)
			if err != nil {
				return e.Wrap(string(c), err)
			}
			*dst = products
			return nil
		})
	}
	fetch(domain.CollectionFlash, &out.flash)
	fetch(domain.CollectionBest, &out.best)
	fetch(domain.CollectionExplore, &out.explore)

	if err := g.Wait(); err != nil {
		return sections{}, e.Wrap(op, err)
	}

	return out, nil
}

// Countdown возвращает остаток до конца распродажи. До Start остаток нулевой.
func (s *StorefrontUseCase) Countdown() domain.Countdown {
	s.mu.RLock()
	scheduler := s.scheduler
	s.mu.RUnlock()

	if scheduler == nil {
		return domain.Countdown{}
	}

	return domain.Countdown{
		Deadline: scheduler.Deadline(),
		TimeLeft: scheduler.Current(),
	}
}

func (s *StorefrontUseCase) Slides() domain.SlideState {
	return s.rotator.State()
}

func (s *StorefrontUseCase) SelectSlide(index int) error {
	const op = "StorefrontUseCase.SelectSlide"

	if err := s.rotator.Select(index); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Dashboard перечитывает все товары и категории и считает сводку.
// Ошибки чтения не прерывают запрос: сводка строится по последним успешным данным.
func (s *StorefrontUseCase) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	var g errgroup.Group
	g.Go(func() error { return s.allProducts.Refresh(ctx) })
	g.Go(func() error { return s.categories.Refresh(ctx) })
	_ = g.Wait()

	stats := catalog.Stats(s.allProducts.Items(), s.categories.Items())
	return &stats, nil
}

func (s *StorefrontUseCase) Nav(currentRoute string) []domain.NavItem {
	return catalog.ResolveNav(domain.AdminNav, currentRoute)
}

func nonNil(products []domain.Product) []domain.Product {
	if products == nil {
		return []domain.Product{}
	}
	return products
}
