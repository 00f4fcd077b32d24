package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Limits   LimitConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxRetries      int
	AutoMigrate     bool
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig is optional; an empty Addr disables idempotent create.
type RedisConfig struct {
	Addr           string
	MaxRetries     int
	IdempotencyTTL time.Duration
}

type LimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests can supply their own.
func FromEnv(getenv func(string) string) (*Config, error) {
	p := parser{getenv: getenv}

	cfg := &Config{
		Env: p.str("APP_ENV", "development"),
		Server: ServerConfig{
			Port:         p.str("PORT", "3000"),
			ReadTimeout:  p.duration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: p.duration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  p.duration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            p.str("DB_HOST", ""),
			Port:            p.str("DB_PORT", "5432"),
			User:            p.str("DB_USER", ""),
			Password:        p.str("DB_PASSWORD", ""),
			Name:            p.str("DB_NAME", ""),
			SSLMode:         p.str("DB_SSLMODE", "disable"),
			MaxRetries:      p.integer("DB_MAX_RETRIES", 5),
			AutoMigrate:     p.boolean("MIGRATIONS_AUTO", false),
			MaxOpenConns:    p.integer("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    p.integer("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: p.duration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Redis: RedisConfig{
			Addr:           p.str("REDIS_ADDR", ""),
			MaxRetries:     p.integer("REDIS_MAX_RETRIES", 5),
			IdempotencyTTL: p.duration("IDEMPOTENCY_TTL", 24*time.Hour),
		},
		Limits: LimitConfig{
			RequestsPerSecond: p.float("RATE_LIMIT_RPS", 10),
			Burst:             p.integer("RATE_LIMIT_BURST", 20),
		},
	}

	if p.err != nil {
		return nil, p.err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	db := c.Database
	switch {
	case db.Host == "":
		return fmt.Errorf("config: DB_HOST must be set")
	case db.User == "":
		return fmt.Errorf("config: DB_USER must be set")
	case db.Name == "":
		return fmt.Errorf("config: DB_NAME must be set")
	case db.MaxRetries < 1:
		return fmt.Errorf("config: DB_MAX_RETRIES must be positive")
	}
	if c.Limits.RequestsPerSecond <= 0 || c.Limits.Burst < 1 {
		return fmt.Errorf("config: RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN is the key/value form used by gorm's postgres driver.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

// MigrateURL is the URL form golang-migrate expects.
func (d DatabaseConfig) MigrateURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

type parser struct {
	getenv func(string) string
	err    error
}

func (p *parser) str(key, def string) string {
	if v := p.getenv(key); v != "" {
		return v
	}
	return def
}

func (p *parser) integer(key string, def int) int {
	raw := p.getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, err)
		return def
	}
	return v
}

func (p *parser) float(key string, def float64) float64 {
	raw := p.getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.fail(key, err)
		return def
	}
	return v
}

func (p *parser) boolean(key string, def bool) bool {
	raw := p.getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(key, err)
		return def
	}
	return v
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	raw := p.getenv(key)
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.fail(key, err)
		return def
	}
	return v
}

func (p *parser) fail(key string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("config: %s: %w", key, err)
	}
}
