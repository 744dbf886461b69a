package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears keys for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestParseDefaults(t *testing.T) {
	unsetenv(t, "PORT", "APP_ENV", "JWT_ACCESS_TTL_HOURS", "REDIS_ADDR", "FRONTEND_URL")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, EnvDevelopment, cfg.AppEnv)
	assert.Equal(t, []string{DevFrontendURL}, cfg.AllowedOrigins())
	assert.Equal(t, 12*time.Hour, cfg.AccessTTL())
	assert.False(t, cfg.RedisEnabled())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("FRONTEND_URL", "https://inscricoes.example.com/")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("JWT_ACCESS_TTL_HOURS", "2")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://inscricoes.example.com"}, cfg.AllowedOrigins())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.KafkaEnabled())
	assert.Equal(t, 2*time.Hour, cfg.AccessTTL())
	assert.EqualValues(t, 30, cfg.RateLimitPerMinute)
}

func TestProductionAuthNeedsSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("ADMIN_AUTH_REQUIRED", "true")
	unsetenv(t, "JWT_ACCESS_SECRET")

	_, err := Parse()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "n", DBPort: "5432", DBSSLMode: "disable"}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
	assert.NotContains(t, cfg.RedactedDSN(), "password")

	cfg.DatabaseURL = "postgres://u:secret@db:5432/n"
	assert.Equal(t, "postgres://u:secret@db:5432/n", cfg.DSN())
	assert.NotContains(t, cfg.RedactedDSN(), "secret")
}
