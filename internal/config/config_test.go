package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 3030, cfg.AppPort)
	assert.Equal(t, "http://localhost:11434", cfg.OllamaURL)
	assert.Equal(t, "./storage", cfg.StorageDir)
	assert.Equal(t, "file", cfg.SessionBackend)
	assert.Equal(t, 10000, cfg.ChunkSize)
	assert.Equal(t, 500, cfg.ChunkOverlap)
	assert.Equal(t, 2, cfg.RetrievalTopK)
	assert.Equal(t, "llama3.2", cfg.TitleModel)
	assert.True(t, cfg.WaitForOllama)
	assert.False(t, cfg.StrictModelValidation)
	assert.Equal(t, "Chats", filepath.Base(cfg.SessionsDir))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("APP_PORT", "8080")
	t.Setenv("CHUNK_SIZE", "200")
	t.Setenv("STRICT_MODEL_VALIDATION", "true")
	t.Setenv("SESSION_BACKEND", "redis")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.AppPort)
	assert.Equal(t, 200, cfg.ChunkSize)
	assert.True(t, cfg.StrictModelValidation)
	assert.Equal(t, "redis", cfg.SessionBackend)
}
