package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/marcelsud/webhookconfig-repository/config"
	"github.com/marcelsud/webhookconfig-repository/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "provider.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("success - defaults fill missing keys", func(t *testing.T) {
		path := writeConfig(t, `PORT = "9090"`)

		cfg, err := config.LoadFile(path)

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "https://api.bitbucket.org", cfg.APIEndpoint)
		assert.Equal(t, "2.0", cfg.APIVersion)
		assert.Equal(t, resource.Options{ErrorMode: resource.Preserve, ReadMode: resource.Echo}, cfg.HandlerOptions())
	})

	t.Run("success - file values", func(t *testing.T) {
		path := writeConfig(t, `
BITBUCKET_API_ENDPOINT = "http://localhost:7990"
ERROR_MODE = "flatten"
READ_MODE = "fetch"
`)

		cfg, err := config.LoadFile(path)

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:7990", cfg.APIEndpoint)
		assert.Equal(t, resource.Options{ErrorMode: resource.Flatten, ReadMode: resource.Fetch}, cfg.HandlerOptions())
	})

	t.Run("success - environment overrides file", func(t *testing.T) {
		path := writeConfig(t, `ERROR_MODE = "preserve"`)
		t.Setenv("ERROR_MODE", "flatten")

		cfg, err := config.LoadFile(path)

		require.NoError(t, err)
		assert.Equal(t, "flatten", cfg.ErrorMode)
	})

	t.Run("error - missing file", func(t *testing.T) {
		_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.toml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})

	t.Run("error - unknown error mode", func(t *testing.T) {
		path := writeConfig(t, `ERROR_MODE = "loose"`)

		_, err := config.LoadFile(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ERROR_MODE")
	})

	t.Run("error - relative endpoint", func(t *testing.T) {
		path := writeConfig(t, `BITBUCKET_API_ENDPOINT = "api.bitbucket.org"`)

		_, err := config.LoadFile(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "absolute URL")
	})

	t.Run("error - unknown log level", func(t *testing.T) {
		path := writeConfig(t, `LOG_LEVEL = "critical"`)

		_, err := config.LoadFile(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "LOG_LEVEL")
	})

	t.Run("success - debug log level", func(t *testing.T) {
		path := writeConfig(t, `LOG_LEVEL = "debug"`)

		cfg, err := config.LoadFile(path)

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}

func TestGetConfig_WithoutFile(t *testing.T) {
	// The package directory carries no .env, so only defaults and environment apply
	t.Setenv("READ_MODE", "fetch")

	cfg, err := config.GetConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "fetch", cfg.ReadMode)
}
