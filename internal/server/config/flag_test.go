package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overrides from flags", func(t *testing.T) {
		os.Args = []string{"testbin",
			"-a", ":9090",
			"-d", "postgres://flags/accounts",
			"-r", "redis://flags:6379/2",
			"-s", "flag-secret",
			"-t", "15",
			"-l", "10",
			"-b", "12",
		}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, ":9090", cfg.EndpointAddr)
		assert.Equal(t, "postgres://flags/accounts", cfg.DatabaseDSN)
		assert.Equal(t, "redis://flags:6379/2", cfg.RedisURL)
		assert.Equal(t, "flag-secret", cfg.SecretKey)
		assert.Equal(t, 15*time.Minute, cfg.AccessTokenValidityDuration)
		assert.Equal(t, 10*time.Minute, cfg.SessionTTL)
		assert.Equal(t, 12, cfg.BcryptCost)
	})

	t.Run("no flags keeps defaults", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, ":8080", cfg.EndpointAddr)
		assert.Equal(t, 60*time.Minute, cfg.AccessTokenValidityDuration)
		assert.Equal(t, time.Duration(0), cfg.SessionTTL)
	})
}

func Test_parseEnv(t *testing.T) {
	t.Setenv("ADDRESS", ":7070")
	t.Setenv("DATABASE_DSN", "postgres://env/accounts")
	t.Setenv("REDIS_URL", "redis://env:6379/3")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("ACCESS_TOKEN_VALIDITY", "45m")
	t.Setenv("SESSION_TTL", "12h")
	t.Setenv("BCRYPT_COST", "8")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":7070", cfg.EndpointAddr)
	assert.Equal(t, "postgres://env/accounts", cfg.DatabaseDSN)
	assert.Equal(t, "redis://env:6379/3", cfg.RedisURL)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 45*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 8, cfg.BcryptCost)
}

func Test_parseEnv_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_VALIDITY", "whenever")
	t.Setenv("BCRYPT_COST", "lots")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 60*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 10, cfg.BcryptCost)
}
