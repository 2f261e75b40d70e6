package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iftikharqureshi/plain-english-explainer/internal/features/config/domain"
)

func TestAppConfigService_LoadAppConfig(t *testing.T) {
	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		service := NewAppConfigService(filepath.Join(t.TempDir(), "nope.json"))

		appConfig, err := service.LoadAppConfig()
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultModel, appConfig.Model)
		assert.False(t, appConfig.StrictSchema)
	})

	t.Run("File values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app_config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"model": "gpt-custom",
			"model_params": {"temperature": 0.7, "max_tokens": 256},
			"strict_schema": true
		}`), 0644))

		appConfig, err := NewAppConfigService(path).LoadAppConfig()
		require.NoError(t, err)
		assert.Equal(t, "gpt-custom", appConfig.Model)
		assert.Equal(t, 0.7, appConfig.ModelParams.Temperature)
		assert.Equal(t, 256, appConfig.ModelParams.MaxTokens)
		assert.True(t, appConfig.StrictSchema)
	})

	t.Run("Empty model falls back to the default model", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app_config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"strict_schema": true}`), 0644))

		appConfig, err := NewAppConfigService(path).LoadAppConfig()
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultModel, appConfig.Model)
		assert.True(t, appConfig.StrictSchema)
	})

	t.Run("Corrupt file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app_config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

		_, err := NewAppConfigService(path).LoadAppConfig()
		assert.Error(t, err)
	})
}

func TestAppConfigService_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_config.json")
	service := NewAppConfigService(path)

	in := &domain.AppConfig{
		Model:        "gpt-custom",
		ModelParams:  domain.ModelParams{Temperature: 0.5, MaxTokens: 128},
		StrictSchema: true,
	}
	require.NoError(t, service.SaveAppConfig(in))

	out, err := service.LoadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
