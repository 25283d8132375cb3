package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresCredentials(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("API_Key", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("Secret_Key", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("API_KEY", "k")
	t.Setenv("SECRET_KEY", "s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://testnet.binancefuture.com", cfg.BaseURL)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, 10, cfg.SyncTimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotZero(t, cfg.ClientOptions().Timeout)
}

func TestLoadReadsYAML(t *testing.T) {
	t.Setenv("API_KEY", "k")
	t.Setenv("SECRET_KEY", "s")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"baseURL: https://example.test\ntimeoutSeconds: 5\nlog:\n  level: debug\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.test", cfg.BaseURL)
	assert.Equal(t, 5, cfg.TimeoutSeconds)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadAcceptsLegacyEnvNames(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("API_Key", "legacy-key")
	t.Setenv("Secret_Key", "legacy-secret")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "legacy-key", cfg.APIKey)
	assert.Equal(t, "legacy-secret", cfg.SecretKey)
}

func TestLoadMissingYAMLIsFine(t *testing.T) {
	t.Setenv("API_KEY", "k")
	t.Setenv("SECRET_KEY", "s")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NoError(t, err)
}
