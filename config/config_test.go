package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var c AppConfig
	applyDefaults(&c)

	assert.Equal(t, "8080", c.AppPort)
	assert.Equal(t, "release", c.GinMode)
	assert.Equal(t, 72, c.TokenTTLHours)
	assert.Equal(t, 60, c.RateLimitPerMinute)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.Equal(t, "3306", c.DBPort)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.RedisHost, "cache must stay disabled unless configured")
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")

	var c AppConfig
	applyDefaults(&c)
	applyEnvOverrides(&c)

	assert.Equal(t, "9999", c.AppPort)
	assert.Equal(t, "from-env", c.JWTSecret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.AllowedOrigins)
	assert.Equal(t, 5, c.RateLimitPerMinute)
}

func TestLoadJSONConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{
		"app": {"AppPort": "3000", "JWTSecret": "file-secret", "TokenTTLHours": 24},
		"database": {"DBHost": "db.internal", "DBName": "blog"},
		"redis": {"RedisHost": "cache.internal", "RedisPort": 6380},
		"log": {"Level": "warn", "Path": "logs/app.log"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	var c AppConfig
	require.NoError(t, loadJSONConfig(path, &c))

	assert.Equal(t, "3000", c.AppPort)
	assert.Equal(t, "file-secret", c.JWTSecret)
	assert.Equal(t, 24, c.TokenTTLHours)
	assert.Equal(t, "db.internal", c.DBHost)
	assert.Equal(t, "blog", c.DBName)
	assert.Equal(t, "cache.internal", c.RedisHost)
	assert.Equal(t, 6380, c.RedisPort)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "logs/app.log", c.LogPath)
}

func TestLoadJSONConfigMissingFileIsIgnored(t *testing.T) {
	var c AppConfig
	assert.NoError(t, loadJSONConfig(filepath.Join(t.TempDir(), "absent.json"), &c))
	assert.Equal(t, AppConfig{}, c)
}

func TestLoadJSONConfigRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	var c AppConfig
	assert.Error(t, loadJSONConfig(path, &c))
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitAndTrim(" a , b ,"))
	assert.Empty(t, splitAndTrim(" , ,"))
}
