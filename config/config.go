// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Storage drivers
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Config holds every setting the server reads at startup
type Config struct {
	Env     string `env:"ENV,default=development"`
	Port    string `env:"PORT,default=8080"`
	BaseURL string `env:"BASE_URL"`

	StorageDriver string `env:"STORAGE_DRIVER,default=memory"`

	Database DatabaseConfig
	Redis    RedisConfig

	ChromePath    string        `env:"CHROME_PATH"`
	ExportTimeout time.Duration `env:"EXPORT_TIMEOUT,default=30s"`

	PaymentSessionURL  string `env:"PAYMENT_SESSION_URL"`
	PaymentCheckoutURL string `env:"PAYMENT_CHECKOUT_URL"`

	TemplateImageDir      string `env:"TEMPLATE_IMAGE_DIR,default=static/templates"`
	ImageCacheDir         string `env:"IMAGE_CACHE_DIR,default=cache/images"`
	GoogleCredentialsPath string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	TemplateDriveFolderID string `env:"TEMPLATE_DRIVE_FOLDER_ID"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`
}

// DatabaseConfig holds the Postgres connection settings
type DatabaseConfig struct {
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"DB_HOST"`
	Port     string `env:"DB_PORT,default=5432"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`
	SSLMode  string `env:"DB_SSLMODE,default=disable"`
}

// RedisConfig holds the Redis connection settings
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,default=0"`
}

// Load reads .env (outside production) and decodes the environment
func Load() (*Config, error) {
	cfg := &Config{Env: os.Getenv("ENV")}
	if !cfg.IsProduction() {
		// .env overrides system variables in development
		_ = godotenv.Overload()
	}

	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that depend on each other
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageMemory, StorageRedis:
	case StoragePostgres:
		if c.Database.URL == "" && (c.Database.Host == "" || c.Database.User == "" || c.Database.Name == "") {
			return fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q (expected memory, postgres or redis)", c.StorageDriver)
	}
	if c.ExportTimeout <= 0 {
		return fmt.Errorf("EXPORT_TIMEOUT must be positive, got %s", c.ExportTimeout)
	}
	return nil
}

// IsProduction reports whether ENV is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// PublicBaseURL is BASE_URL without a trailing slash, or localhost on PORT
func (c *Config) PublicBaseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return "http://localhost:" + c.Port
}

// DriveEnabled reports whether template images come from Google Drive
func (c *Config) DriveEnabled() bool {
	return c.GoogleCredentialsPath != "" && c.TemplateDriveFolderID != ""
}

// ConnString returns DATABASE_URL or a DSN built from the DB_* variables
func (d DatabaseConfig) ConnString() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}
