package cfg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/joho/godotenv"
)

const (
	UploadBackendAPI   = "api"
	UploadBackendMinIO = "minio"
)

type Config struct {
	Http       *HTTPConfig
	Catalog    *CatalogCfg
	Storefront *StorefrontCfg
	Upload     *UploadCfg
	Minio      *MinIOCfg
	Redis      *RedisCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// CatalogCfg - параметры удаленного сервиса каталога.
type CatalogCfg struct {
	BaseURL string
	Timeout time.Duration
}

// StorefrontCfg - параметры витрины: таймеры и длительность распродажи.
type StorefrontCfg struct {
	CountdownTick     time.Duration
	SlideInterval     time.Duration
	FlashSaleDuration time.Duration
	DeadlineKey       string
}

type UploadCfg struct {
	Backend      string // api или minio
	MaxImageSize int64
}

type MinIOCfg struct {
	MinioEndpoint     string // Адрес конечной точки Minio
	BucketName        string // Название бакета для изображений каталога
	MinioRootUser     string
	MinioRootPassword string
	MinioUseSSL       bool
	PublicURL         string // Базовый адрес, по которому изображения доступны клиентам
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
}

// Load загружает конфигурацию из окружения. Если рядом лежит .env, его значения
// подставляются для не заданных переменных.
func Load(log logger.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("failed to read .env: %v", err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalog, err := loadCatalogCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	storefront, err := loadStorefrontCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	upload, err := loadUploadCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var minio *MinIOCfg
	if upload.Backend == UploadBackendMinIO {
		minio, err = loadMinIOCfg(log)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:       http,
		Catalog:    catalog,
		Storefront: storefront,
		Upload:     upload,
		Minio:      minio,
		Redis:      redis,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 30 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         getEnvOrDefault("HTTP_PORT", defaultPort),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadCatalogCfg(log logger.Logger) (*CatalogCfg, error) {
	const (
		defaultBaseURL = "http://localhost:5000"
		defaultTimeout = 15 * time.Second
	)

	timeout, err := parseDurationEnv("CATALOG_TIMEOUT", defaultTimeout)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_TIMEOUT")
		return nil, err
	}

	return &CatalogCfg{
		BaseURL: strings.TrimRight(getEnvOrDefault("CATALOG_API_URL", defaultBaseURL), "/"),
		Timeout: timeout,
	}, nil
}

func loadStorefrontCfg(log logger.Logger) (*StorefrontCfg, error) {
	const (
		defaultCountdownTick     = time.Second
		defaultSlideInterval     = 5 * time.Second
		defaultFlashSaleDuration = 72 * time.Hour
		defaultDeadlineKey       = "storefront:flash-sale:deadline"
	)

	tick, err := parseDurationEnv("COUNTDOWN_TICK", defaultCountdownTick)
	if err != nil {
		log.Errorf(err, "invalid COUNTDOWN_TICK")
		return nil, err
	}

	slideInterval, err := parseDurationEnv("SLIDE_INTERVAL", defaultSlideInterval)
	if err != nil {
		log.Errorf(err, "invalid SLIDE_INTERVAL")
		return nil, err
	}

	saleDuration, err := parseDurationEnv("FLASH_SALE_DURATION", defaultFlashSaleDuration)
	if err != nil {
		log.Errorf(err, "invalid FLASH_SALE_DURATION")
		return nil, err
	}

	if tick <= 0 || slideInterval <= 0 || saleDuration <= 0 {
		err := fmt.Errorf("storefront durations must be positive: %w", e.ErrIncorrectEnvVariable)
		log.Errorf(err, "invalid storefront timers")
		return nil, err
	}

	return &StorefrontCfg{
		CountdownTick:     tick,
		SlideInterval:     slideInterval,
		FlashSaleDuration: saleDuration,
		DeadlineKey:       getEnvOrDefault("FLASH_SALE_DEADLINE_KEY", defaultDeadlineKey),
	}, nil
}

func loadUploadCfg(log logger.Logger) (*UploadCfg, error) {
	const (
		defaultBackend      = UploadBackendAPI
		defaultMaxImageSize = 15 << 20
	)

	backend := strings.ToLower(getEnvOrDefault("UPLOAD_BACKEND", defaultBackend))
	if backend != UploadBackendAPI && backend != UploadBackendMinIO {
		err := e.Wrap(backend, e.ErrUnknownUploadBackend)
		log.Errorf(err, "invalid UPLOAD_BACKEND")
		return nil, err
	}

	maxSize, err := parseIntEnv("MAX_IMAGE_SIZE", defaultMaxImageSize)
	if err != nil {
		log.Errorf(err, "invalid MAX_IMAGE_SIZE")
		return nil, e.Wrap("MAX_IMAGE_SIZE", err)
	}

	return &UploadCfg{
		Backend:      backend,
		MaxImageSize: int64(maxSize),
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL   = false
		defaultEndpoint = "minio:9000"
		defaultBucket   = "catalog-images"
	)

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	endpoint := getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint)

	scheme := "http"
	if useSSL {
		scheme = "https"
	}

	return &MinIOCfg{
		MinioEndpoint:     endpoint,
		BucketName:        getEnvOrDefault("BUCKET_NAME", defaultBucket),
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
		PublicURL:         strings.TrimRight(getEnvOrDefault("MINIO_PUBLIC_URL", scheme+"://"+endpoint), "/"),
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
	)

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	return &RedisCfg{
		Addr:        getEnvOrDefault("REDIS_ADDR", defaultAddr),
		Password:    getEnv("REDIS_PASSWORD"),
		User:        getEnv("REDIS_USER"),
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     max(readTimeout, writeTimeout),
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
