// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// pushover-to-gotify bridge. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Pushover holds origin-provider credentials and endpoint overrides.
	Pushover Pushover `envPrefix:"PUSHOVER_"`

	// Gotify holds destination-provider address and token settings.
	Gotify Gotify `envPrefix:"GOTIFY_"`

	// Cache holds local filesystem cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Stream holds settings for the streaming connection lifecycle.
	Stream Stream `envPrefix:"STREAM_"`

	// Status holds settings for the optional status HTTP endpoint.
	Status Status `envPrefix:"STATUS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Pushover holds Open Client API credentials and host overrides for the
// origin provider.
type Pushover struct {
	// DeviceID is the registered open-client device identifier.
	// Env: PUSHOVER_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`

	// Secret is the session secret obtained during device registration.
	// Must be kept confidential.
	// Env: PUSHOVER_SECRET
	Secret string `env:"SECRET"`

	// APIHost is the REST API base URL including the version path prefix
	// (e.g. "https://api.pushover.net/1"). Defaults to the public API.
	// Env: PUSHOVER_API_HOST
	APIHost string `env:"API_HOST"`

	// StreamHost is the websocket URL of the message stream
	// (e.g. "wss://client.pushover.net/push").
	// Env: PUSHOVER_STREAM_HOST
	StreamHost string `env:"STREAM_HOST"`

	// IconHost is the base URL from which application icons are served
	// (e.g. "https://client.pushover.net").
	// Env: PUSHOVER_ICON_HOST
	IconHost string `env:"ICON_HOST"`
}

// Gotify holds destination-provider settings.
type Gotify struct {
	// Host is the Gotify server base URL (e.g. "https://gotify.example.com").
	// Env: GOTIFY_HOST
	Host string `env:"HOST"`

	// Token is the Gotify application token attached to every push.
	// Must be kept confidential.
	// Env: GOTIFY_TOKEN
	Token string `env:"TOKEN"`
}

// Cache holds local filesystem cache settings.
type Cache struct {
	// IconDir is the directory where downloaded application icons are
	// cached. When empty, icon caching is disabled entirely.
	// Env: CACHE_ICON_DIR
	IconDir string `env:"ICON_DIR"`
}

// Stream holds streaming-connection lifecycle settings.
type Stream struct {
	// KeepAliveTimeout is the maximum silence between keep-alive frames
	// before the session is considered dead (e.g. "60s"). Defaults to one
	// minute.
	// Env: STREAM_KEEPALIVE_TIMEOUT
	KeepAliveTimeout time.Duration `env:"KEEPALIVE_TIMEOUT"`
}

// Status holds settings for the optional status HTTP endpoint.
type Status struct {
	// Address is the TCP address on which the status server listens, in
	// "host:port" format. When empty, no status server is started.
	// Env: STATUS_ADDRESS
	Address string `env:"ADDRESS"`
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the merged config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
