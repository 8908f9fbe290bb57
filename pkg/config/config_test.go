package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "stock-tracker.db", cfg.Storage.FileName)
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout.Std())
	assert.False(t, cfg.AuthEnabled())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9090"
storage:
  dataDir: /var/lib/stock-tracker
fetch:
  timeout: 10s
auth:
  rpId: stocks.example.com
  rpOrigins:
    - https://stocks.example.com
  sessionTtl: 2h
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/var/lib/stock-tracker", cfg.Storage.DataDir)
	// Unset fields keep their defaults.
	assert.Equal(t, "stock-tracker.db", cfg.Storage.FileName)
	assert.Equal(t, 10*time.Second, cfg.Fetch.Timeout.Std())
	assert.True(t, cfg.AuthEnabled())
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL.Std())
	assert.Equal(t, []string{"https://stocks.example.com"}, cfg.Auth.RPOrigins)
	// Default challenge TTL survives a partial auth section.
	assert.Equal(t, 5*time.Minute, cfg.Auth.ChallengeTTL.Std())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
