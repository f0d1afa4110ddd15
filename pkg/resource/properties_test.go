package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `app:
  server:
    port: ${TEST_WEATHER_PORT:5001}
    context-path: ${TEST_WEATHER_CONTEXT:/}
  weather:
    units: metric
    read-timeout: 10s
  redis:
    enabled: ${TEST_WEATHER_REDIS:false}
`

func TestInitResolvesEnvPlaceholders(t *testing.T) {
	t.Setenv("TEST_WEATHER_PORT", "8080")
	t.Setenv("TEST_WEATHER_REDIS", "true")

	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	require.NoError(t, Init(path))

	assert.Equal(t, 8080, GetInt("app.server.port"))
	assert.Equal(t, "/", GetString("app.server.context-path"))
	assert.True(t, GetBool("app.redis.enabled"))
	assert.Equal(t, 10*time.Second, GetDuration("app.weather.read-timeout"))
	assert.Equal(t, "metric", GetStringOrDefault("app.weather.units", "standard"))
	assert.Equal(t, "standard", GetStringOrDefault("app.weather.missing", "standard"))

	Set("app.weather.units", "imperial")
	assert.Equal(t, "imperial", GetString("app.weather.units"))
}

func TestInitMissingFile(t *testing.T) {
	assert.Error(t, Init(filepath.Join(t.TempDir(), "missing.yml")))
}
