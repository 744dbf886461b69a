package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// DevFrontendURL is the Vite dev server the dashboard runs on locally.
	DevFrontendURL = "http://localhost:5173"
)

type Config struct {
	Port   string `env:"PORT" envDefault:"3001"`
	AppEnv string `env:"APP_ENV" envDefault:"development"`

	// DatabaseURL wins over the DB_* parts when set.
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER" envDefault:"postgres"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME" envDefault:"event_registration"`
	DBSSLMode   string `env:"DB_SSLMODE" envDefault:"disable"`

	FrontendURL string `env:"FRONTEND_URL"`

	// ✅ Admin credentials
	AdminUsername     string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
	AdminPassword     string `env:"ADMIN_PASSWORD"`
	AdminAuthRequired bool   `env:"ADMIN_AUTH_REQUIRED" envDefault:"false"`

	JWTAccessSecret   string `env:"JWT_ACCESS_SECRET"`
	JWTAccessTTLHours int    `env:"JWT_ACCESS_TTL_HOURS" envDefault:"12"`

	// ✅ Redis Config
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// ✅ Kafka Config
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"registration-changes"`
	KafkaGroupID string   `env:"KAFKA_GROUP_ID" envDefault:"event-registration-backend"`

	RateLimitPerMinute int64  `env:"RATE_LIMIT_PER_MINUTE" envDefault:"100"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env (if present) and the process environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file, using environment variables")
	}
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.IsProduction() && cfg.AdminAuthRequired && cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required when ADMIN_AUTH_REQUIRED is set in production")
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, EnvProduction)
}

// DSN returns the postgres connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

// AllowedOrigins is FRONTEND_URL in production and the local dev server otherwise.
func (c *Config) AllowedOrigins() []string {
	if c.IsProduction() && c.FrontendURL != "" {
		return []string{strings.TrimRight(c.FrontendURL, "/")}
	}
	return []string{DevFrontendURL}
}

func (c *Config) AccessTTL() time.Duration {
	if c.JWTAccessTTLHours <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(c.JWTAccessTTLHours) * time.Hour
}

func (c *Config) RedisEnabled() bool { return c.RedisAddr != "" }

func (c *Config) KafkaEnabled() bool { return len(c.KafkaBrokers) > 0 && c.KafkaTopic != "" }

// RedactedDSN is safe to log.
func (c *Config) RedactedDSN() string {
	if c.DatabaseURL != "" {
		if u, err := url.Parse(c.DatabaseURL); err == nil {
			return u.Redacted()
		}
		return "<invalid DATABASE_URL>"
	}
	return fmt.Sprintf("host=%s user=%s dbname=%s port=%s", c.DBHost, c.DBUser, c.DBName, c.DBPort)
}
