package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/storefront/internal/cfg"
	v1Http "github.com/DRSN-tech/storefront/internal/delivery/v1/http"
	"github.com/DRSN-tech/storefront/internal/infrastructure/catalogapi"
	minioInfra "github.com/DRSN-tech/storefront/internal/infrastructure/minio"
	s3Repo "github.com/DRSN-tech/storefront/internal/repository/minio"
	"github.com/DRSN-tech/storefront/internal/repository/redis"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/closer"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"github.com/jonboulle/clockwork"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

type App struct {
	cfg        *config.Config
	logger     logger.Logger
	closer     *closer.Closer
	httpSrv    *v1Http.Server
	storefront *usecase.StorefrontUseCase
}

// NewApp собирает зависимости: клиент сервиса каталога, загрузчик изображений,
// хранилище дедлайна в Redis, сценарии витрины и админки и HTTP-сервер.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(0, log)

	catalogClient := catalogapi.NewClient(cfg.Catalog, log)

	images, err := newImagesInfra(cfg, catalogClient, log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redisClient := clients.NewRedisClient(cfg.Redis)
	pingCtx, pingCancel := context.WithTimeout(context.Background(), startupTimeout)
	defer pingCancel()
	if err := redisClient.Ping(pingCtx); err != nil {
		log.Warnf("Redis unavailable, flash sale deadline will be local: %v", err)
	}
	cl.Add("redis", redisClient.Close)

	deadlineRepo := redis.NewDeadlineRepo(redisClient, log)

	storefrontUC := usecase.NewStorefrontUC(catalogClient, catalogClient, deadlineRepo, cfg.Storefront, clockwork.NewRealClock(), log)
	productUC := usecase.NewProductAdminUC(catalogClient, images, log)
	categoryUC := usecase.NewCategoryAdminUC(catalogClient, images, log)

	cl.AddFunc("category admin", categoryUC.Close)
	cl.AddFunc("product admin", productUC.Close)
	cl.AddFunc("storefront", storefrontUC.Stop)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, cfg.Upload.MaxImageSize, log)
	router.Init(storefrontUC, productUC, categoryUC)

	httpSrv := v1Http.NewServer(r, cfg.Http, log)
	cl.Add("http server", httpSrv.Stop)

	return &App{
		cfg:        cfg,
		logger:     log,
		closer:     cl,
		httpSrv:    httpSrv,
		storefront: storefrontUC,
	}, nil
}

// newImagesInfra выбирает, куда загружать изображения: в сервис каталога (POST /api/upload)
// или напрямую в MinIO.
func newImagesInfra(cfg *config.Config, catalogClient *catalogapi.Client, log logger.Logger) (usecase.ImagesInfra, error) {
	if cfg.Upload.Backend != config.UploadBackendMinIO {
		return catalogClient, nil
	}

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	if err := clients.EnsureBucket(ctx, minioClient, cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	log.Infof("Images are uploaded to MinIO bucket %s", cfg.Minio.BucketName)
	return minioInfra.NewMinioInfrastructure(s3Repo.NewImageRepo(minioClient), cfg.Minio, log), nil
}

// Run запускает таймеры витрины и HTTP-сервер и блокируется до сигнала остановки
// или фатальной ошибки сервера.
func (a *App) Run() error {
	startCtx, startCancel := context.WithTimeout(context.Background(), startupTimeout)
	a.storefront.Start(startCtx)
	startCancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.httpSrv.Run()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		if appErr != nil {
			a.logger.Errorf(appErr, "HTTP server fatal error")
		}
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}
