package config

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvMissingCredentials(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvAuthToken, "")

	_, err := FromEnv(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvAPIKey)
	assert.Contains(t, err.Error(), EnvAuthToken)
}

func TestFromEnvMissingOneCredential(t *testing.T) {
	t.Setenv(EnvAPIKey, "key123")
	t.Setenv(EnvAuthToken, "")

	_, err := FromEnv(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvAuthToken)
	assert.NotContains(t, err.Error(), EnvAPIKey)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "key123")
	t.Setenv(EnvAuthToken, "token456")
	t.Setenv(EnvBaseURL, "https://staging.example.com/api/v1")

	cfg, err := FromEnv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "key123", cfg.APIKey)
	assert.Equal(t, "token456", cfg.AuthToken)
	assert.Equal(t, "https://staging.example.com/api/v1", cfg.BaseURL)
	assert.Empty(t, cfg.DisabledTools)
}

func TestLoad(t *testing.T) {
	yamlConfig := `
base_url: https://example.com/api/v1
disabled_tools:
  - sync_user_data
  - get_events
`
	file, err := Load(strings.NewReader(yamlConfig))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api/v1", file.BaseURL)
	assert.Equal(t, []string{"sync_user_data", "get_events"}, file.DisabledTools)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(strings.NewReader("disabled_tools: {not: [valid"))
	require.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	file, err := LoadFile("/nonexistent/config.yaml")
	require.NoError(t, err)
	assert.Empty(t, file.BaseURL)
	assert.Empty(t, file.DisabledTools)

	file, err = LoadFile("")
	require.NoError(t, err)
	assert.Empty(t, file.BaseURL)
}

func TestApplyEnvironmentWins(t *testing.T) {
	cfg := &Config{BaseURL: "https://from-env.example.com"}
	cfg.Apply(&File{
		BaseURL:       "https://from-file.example.com",
		DisabledTools: []string{"get_events"},
	})

	assert.Equal(t, "https://from-env.example.com", cfg.BaseURL)
	assert.Equal(t, []string{"get_events"}, cfg.DisabledTools)
}

func TestApplyFileFillsGaps(t *testing.T) {
	cfg := &Config{}
	cfg.Apply(&File{BaseURL: "https://from-file.example.com"})
	assert.Equal(t, "https://from-file.example.com", cfg.BaseURL)
}
