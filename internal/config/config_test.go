package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"port": 9090,
		"database_url": "postgres://localhost/forecaster",
		"industry": "technology",
		"experience": "entry",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/forecaster", cfg.DatabaseURL)
	assert.Equal(t, "technology", cfg.Industry)
	assert.Equal(t, "entry", cfg.Experience)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_PortOutOfRange(t *testing.T) {
	cfg := &Config{
		Port: 70000,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Port:     8080,
		Industry: "healthcare",
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Port:        8080,
		DatabaseURL: "postgres://localhost/forecaster",
		Industry:    "technology",
		Experience:  "entry",
	}

	partial := Config{
		Industry: "finance",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "finance", merged.Industry)

	// Default values should fill in empty fields
	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, "postgres://localhost/forecaster", merged.DatabaseURL)
	assert.Equal(t, "entry", merged.Experience)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Port:     9090,
		Industry: "retail",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "retail", merged.Industry)
}
