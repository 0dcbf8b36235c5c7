package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dbUserEmptyError = errors.New("DB User is Empty")
	dbNameEmptyError = errors.New("DB Name is Empty")
	envLoadError     = errors.New(".env load Error")
	envParseError    = errors.New("env parse Error")
)

type AppConfig struct {
	Env             string        `env:"APP_ENV" envDefault:"dev"`
	Port            string        `env:"APP_PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL"`
	RequestTimeout  time.Duration `env:"APP_REQUEST_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type DatabaseConfig struct {
	Host           string `env:"DATABASE_HOST" envDefault:"localhost"`
	Port           string `env:"DATABASE_PORT" envDefault:"5432"`
	Name           string `env:"DATABASE_NAME" envDefault:"postgres"`
	Password       string `env:"DATABASE_PASSWORD" envDefault:"postgres"`
	User           string `env:"DATABASE_USER" envDefault:"postgres"`
	URL            string `env:"DATABASE_URL"`
	MaxConns       int32  `env:"DATABASE_MAX_CONNS" envDefault:"10"`
	MigrationsPath string `env:"DATABASE_MIGRATIONS_PATH" envDefault:"migrations"`
}

type Config struct {
	App      AppConfig
	Database DatabaseConfig
}

// LoadConfig читает .env (если он есть) и переменные окружения
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", envLoadError, err)
	}

	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	c := &Config{}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return nil, fmt.Errorf("%w: %w", envParseError, err)
	}

	if err := makeDbUrl(c); err != nil {
		return nil, err
	}

	return c, nil
}

func makeDbUrl(cfg *Config) error {
	if cfg.Database.URL == "" {
		if cfg.Database.User == "" {
			return dbUserEmptyError
		}
		if cfg.Database.Name == "" {
			return dbNameEmptyError
		}
		cfg.Database.URL = fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.Name,
		)
	}
	return nil
}
