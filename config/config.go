package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Server struct {
		Port string `env:"PORT" envDefault:"5250"`

		// debug, release or test
		GinMode string `env:"GIN_MODE" envDefault:"release"`

		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	}

	Database struct {
		// sqlite or postgres
		Driver string `env:"DATABASE_DRIVER" envDefault:"sqlite"`

		// SQLite file, relative to the working directory
		Path string `env:"DATABASE_PATH" envDefault:"database/velvetleash.db"`

		// Postgres connection string
		DSN string `env:"DATABASE_DSN"`

		// Insert demo users, sitters and pets into an empty database
		Seed bool `env:"DATABASE_SEED" envDefault:"true"`
	}

	Search struct {
		DefaultRadiusKm      float64 `env:"SEARCH_DEFAULT_RADIUS_KM" envDefault:"10"`
		NearbyCitiesRadiusKm float64 `env:"SEARCH_NEARBY_CITIES_RADIUS_KM" envDefault:"50"`
	}

	Proximity struct {
		// memory scans every candidate, redis prefilters with a GEO set
		Index         string `env:"PROXIMITY_INDEX" envDefault:"memory"`
		RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
		RedisPassword string `env:"REDIS_PASSWORD"`
		RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Notifications struct {
		// Number of event batches buffered before publishers start dropping
		QueueSize int `env:"NOTIFY_QUEUE_SIZE" envDefault:"100"`

		MaxRetries int           `env:"NOTIFY_MAX_RETRIES" envDefault:"3"`
		RetryDelay time.Duration `env:"NOTIFY_RETRY_DELAY" envDefault:"2s"`
	}

	Scheduler struct {
		Enabled  bool          `env:"SCHEDULER_ENABLED" envDefault:"true"`
		Interval time.Duration `env:"SCHEDULER_INTERVAL" envDefault:"1h"`
	}

	Geocoding struct {
		Enabled   bool          `env:"GEOCODING_ENABLED" envDefault:"false"`
		BaseURL   string        `env:"GEOCODING_BASE_URL" envDefault:"https://nominatim.openstreetmap.org"`
		UserAgent string        `env:"GEOCODING_USER_AGENT" envDefault:"VelvetLeash/1.0"`
		CacheDir  string        `env:"GEOCODING_CACHE_DIR"`
		Timeout   time.Duration `env:"GEOCODING_TIMEOUT" envDefault:"10s"`
	}

	RateLimit struct {
		RequestsPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"300"`
		Burst             int `env:"RATE_LIMIT_BURST" envDefault:"50"`
	}

	// Optional JSON file replacing the built-in zip code directory
	ZipDirectoryPath string `env:"ZIP_DIRECTORY_PATH"`
}

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.Geocoding.CacheDir == "" {
		cfg.Geocoding.CacheDir = filepath.Join(os.TempDir(), "velvetleash", "geocode_cache")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite":
	case "postgres":
		if c.Database.DSN == "" {
			return errors.New("DATABASE_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}

	if c.Proximity.Index != "memory" && c.Proximity.Index != "redis" {
		return fmt.Errorf("unsupported PROXIMITY_INDEX %q", c.Proximity.Index)
	}
	if c.Search.DefaultRadiusKm <= 0 {
		return errors.New("SEARCH_DEFAULT_RADIUS_KM must be positive")
	}
	if c.Notifications.QueueSize <= 0 {
		return errors.New("NOTIFY_QUEUE_SIZE must be positive")
	}
	return nil
}
