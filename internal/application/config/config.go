package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Debug      bool   `env:"DEBUG" envDefault:"false"`
	Port       string `env:"PORT" envDefault:"4000"`
	MetricPort string `env:"METRIC_PORT" envDefault:"9090"`

	// StoreDriver выбирает хранилище: postgres для продакшена, memory для локального запуска без БД
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	CORSOrigins    []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	Postgres PostgresConfig
}

type PostgresConfig struct {
	URL string `env:"DB_STRING"`

	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	Name     string `env:"POSTGRES_NAME" envDefault:"zoomer"`
	SSL      string `env:"POSTGRES_SSL" envDefault:"disable"`

	MaxConns        int           `env:"POSTGRES_MAX_CONNS" envDefault:"5"`
	ConnMaxIdleTime time.Duration `env:"POSTGRES_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

func (p *PostgresConfig) DSN() string {
	if p.URL != "" {
		return p.URL
	}

	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.Name,
		p.SSL,
	)
}

// New читает .env (если он есть) и переменные окружения
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	c, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}

	if c.Postgres.MaxConns <= 0 {
		return fmt.Errorf("postgres max conns must be positive, got %d", c.Postgres.MaxConns)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}

	return nil
}
