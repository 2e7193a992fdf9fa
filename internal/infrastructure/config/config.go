package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StorageDriverDisk        = "disk"
	StorageDriverPassthrough = "passthrough"
	StorageDriverMemory      = "memory"
	StorageDriverS3          = "s3"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	S3        S3Config
	Upload    UploadConfig
	Resize    ResizeConfig
	Janitor   JanitorConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
}

type StorageConfig struct {
	Driver           string `envconfig:"STORAGE_DRIVER" default:"disk"`
	Root             string `envconfig:"STORAGE_ROOT" default:"."`
	MemoryMaxEntries int    `envconfig:"MEMORY_MAX_ENTRIES" default:"256"`
}

type S3Config struct {
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	Region          string `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket          string `envconfig:"S3_BUCKET"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
}

type UploadConfig struct {
	MaxFileSize int64 `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"10485760"`
}

type ResizeConfig struct {
	Timeout         time.Duration `envconfig:"RESIZE_TIMEOUT" default:"30s"`
	JPEGQuality     int           `envconfig:"RESIZE_JPEG_QUALITY" default:"85"`
	MaxSide         int           `envconfig:"RESIZE_MAX_SIDE" default:"10000"`
	MaxSourcePixels int64         `envconfig:"RESIZE_MAX_SOURCE_PIXELS" default:"50000000"`
}

type JanitorConfig struct {
	Retention           time.Duration `envconfig:"JANITOR_RETENTION" default:"5m"`
	SweepInterval       time.Duration `envconfig:"JANITOR_SWEEP_INTERVAL" default:"2m"`
	DownloadDeleteDelay time.Duration `envconfig:"JANITOR_DOWNLOAD_DELETE_DELAY" default:"5s"`
	BackgroundInterval  time.Duration `envconfig:"JANITOR_BACKGROUND_INTERVAL" default:"0s"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	Format     string `envconfig:"LOG_FORMAT" default:"json"`
	File       string `envconfig:"LOG_FILE"`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"3"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"7"`
	Compress   bool   `envconfig:"LOG_COMPRESS" default:"false"`
}

type RateLimitConfig struct {
	Enabled        bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerMin int  `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"60"`
	BurstSize      int  `envconfig:"RATE_LIMIT_BURST_SIZE" default:"10"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverDisk, StorageDriverPassthrough, StorageDriverMemory:
	case StorageDriverS3:
		if c.S3.Bucket == "" || c.S3.AccessKeyID == "" || c.S3.SecretAccessKey == "" {
			return errors.New("s3 driver requires S3_BUCKET, S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.Janitor.Retention <= 0 {
		return errors.New("JANITOR_RETENTION must be positive")
	}
	if c.Upload.MaxFileSize <= 0 {
		return errors.New("UPLOAD_MAX_FILE_SIZE must be positive")
	}
	if c.Resize.JPEGQuality < 1 || c.Resize.JPEGQuality > 100 {
		return errors.New("RESIZE_JPEG_QUALITY must be between 1 and 100")
	}
	if c.Resize.MaxSide <= 0 || c.Resize.MaxSourcePixels <= 0 {
		return errors.New("RESIZE_MAX_SIDE and RESIZE_MAX_SOURCE_PIXELS must be positive")
	}
	return nil
}
