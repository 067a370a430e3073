package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultSessionSecret = "dev-session-secret"

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig          `envPrefix:"APP_"`
	Database     DatabaseConfig     `envPrefix:"DB_"`
	Redis        RedisConfig        `envPrefix:"REDIS_"`
	Session      SessionConfig      `envPrefix:"SESSION_"`
	Registration RegistrationConfig `envPrefix:"REGISTRATION_"`
	RateLimit    RateLimitConfig    `envPrefix:"RATE_LIMIT_"`
}

type AppConfig struct {
	Env             string        `env:"ENV" envDefault:"development"`
	Port            string        `env:"PORT" envDefault:"3000"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type DatabaseConfig struct {
	Host          string `env:"HOST" envDefault:"localhost"`
	User          string `env:"USER" envDefault:"postgres"`
	Password      string `env:"PASSWORD"`
	Name          string `env:"NAME" envDefault:"ems"`
	Port          string `env:"PORT" envDefault:"5432"`
	SSLMode       string `env:"SSLMODE" envDefault:"disable"`
	MaxRetries    int    `env:"MAX_RETRIES" envDefault:"5"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"true"`
}

type RedisConfig struct {
	Addr       string `env:"ADDR" envDefault:"127.0.0.1:6379"`
	Password   string `env:"PASSWORD"`
	DB         int    `env:"DB" envDefault:"0"`
	MaxRetries int    `env:"MAX_RETRIES" envDefault:"5"`
}

// SessionConfig mirrors Django's defaults: two-week sessions in a
// "sessionid" cookie.
type SessionConfig struct {
	Secret     string        `env:"SECRET" envDefault:"dev-session-secret"`
	TTL        time.Duration `env:"TTL" envDefault:"336h"`
	CookieName string        `env:"COOKIE_NAME" envDefault:"sessionid"`
	Secure     bool          `env:"COOKIE_SECURE" envDefault:"false"`
}

type RegistrationConfig struct {
	// UseTransaction=false selects the create-then-compensate path for
	// deployments where credentials and profiles live in different stores.
	UseTransaction bool `env:"USE_TRANSACTION" envDefault:"true"`
}

type RateLimitConfig struct {
	LoginRPS      float64 `env:"LOGIN_RPS" envDefault:"0.2"`
	LoginBurst    int     `env:"LOGIN_BURST" envDefault:"5"`
	RegisterRPS   float64 `env:"REGISTER_RPS" envDefault:"0.1"`
	RegisterBurst int     `env:"REGISTER_BURST" envDefault:"3"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.Session.CookieName == "" {
		return errors.New("SESSION_COOKIE_NAME must not be empty")
	}
	if c.IsProduction() && c.Session.Secret == defaultSessionSecret {
		return errors.New("SESSION_SECRET must be set in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// DSN builds the libpq connection string for gorm's postgres driver.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}
