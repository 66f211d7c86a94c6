package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be duration strings (e.g. "90s").
	jsonBody := `{
		"pushover": {
			"device_id": "bridgedevice",
			"secret": "s3cret",
			"api_host": "https://api.pushover.net/1",
			"stream_host": "wss://client.pushover.net/push",
			"icon_host": "https://client.pushover.net"
		},
		"gotify": {
			"host": "https://gotify.example.com",
			"token": "apptoken"
		},
		"cache": { "icon_dir": "/var/cache/icons" },
		"stream": { "keepalive_timeout": "90s" },
		"status": { "address": "localhost:8099" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "bridgedevice", cfg.Pushover.DeviceID)
	assert.Equal(t, "s3cret", cfg.Pushover.Secret)
	assert.Equal(t, "https://api.pushover.net/1", cfg.Pushover.APIHost)
	assert.Equal(t, "wss://client.pushover.net/push", cfg.Pushover.StreamHost)
	assert.Equal(t, "https://client.pushover.net", cfg.Pushover.IconHost)

	assert.Equal(t, "https://gotify.example.com", cfg.Gotify.Host)
	assert.Equal(t, "apptoken", cfg.Gotify.Token)

	assert.Equal(t, "/var/cache/icons", cfg.Cache.IconDir)
	assert.Equal(t, 90*time.Second, cfg.Stream.KeepAliveTimeout)
	assert.Equal(t, "localhost:8099", cfg.Status.Address)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	// keepalive_timeout should be a duration string; make it invalid.
	jsonBody := `{
		"stream": { "keepalive_timeout": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// With non-pointer nested structs, all fields are zero values.
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"gotify": { "host": "https://gotify.example.com" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://gotify.example.com", cfg.Gotify.Host)
	assert.Empty(t, cfg.Gotify.Token)

	// Others remain zero
	assert.Equal(t, Pushover{}, cfg.Pushover)
	assert.Equal(t, Cache{}, cfg.Cache)
	assert.Equal(t, Stream{}, cfg.Stream)
}
