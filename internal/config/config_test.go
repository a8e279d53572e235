package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 15, cfg.HTTP.TimeoutSeconds)
	require.Equal(t, "website_scrapes", cfg.DB.Table)
	require.Equal(t, "memory", cfg.Storage.Provider)
	require.NotEmpty(t, cfg.Scraper.UserAgent)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: 9090\nscraper:\n  user_agent: custom-agent\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "custom-agent", cfg.Scraper.UserAgent)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 0 }},
		{name: "empty user agent", mutate: func(c *Config) { c.Scraper.UserAgent = "" }},
		{name: "bad timeout", mutate: func(c *Config) { c.HTTP.TimeoutSeconds = 0 }},
		{name: "gcs without bucket", mutate: func(c *Config) { c.Storage.Provider = "gcs"; c.Storage.GCSBucket = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
