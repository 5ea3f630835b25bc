package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte("endpoint: https://audit.example.com\ntoken: sekrit\ntimeout_seconds: 10\n")
	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "https://audit.example.com", cfg.Endpoint)
	assert.Equal(t, "sekrit", cfg.Token)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
}

func TestParse_MissingEndpoint(t *testing.T) {
	_, err := Parse([]byte("token: sekrit\n"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("endpoint: [unclosed"))
	assert.Error(t, err)
}

func TestTimeout_ZeroWhenUnset(t *testing.T) {
	cfg, err := Parse([]byte("endpoint: https://audit.example.com\n"))
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Timeout())
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := Config{Endpoint: "https://audit.example.com", TimeoutSeconds: 5}
	data, err := Marshal(cfg)
	require.NoError(t, err)
	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: https://audit.example.com\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://audit.example.com", cfg.Endpoint)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
