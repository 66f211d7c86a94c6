package config

import (
	"fmt"
	"time"
)

// Default endpoints of the public Pushover service. Overridable for tests
// and self-hosted relays.
const (
	DefaultAPIHost          = "https://api.pushover.net/1"
	DefaultStreamHost       = "wss://client.pushover.net/push"
	DefaultIconHost         = "https://client.pushover.net"
	DefaultKeepAliveTimeout = 60 * time.Second
)

// BridgeConfig is the validated runtime configuration view assembled from
// [StructuredConfig] with defaults applied.
type BridgeConfig struct {
	// Pushover contains origin-provider credentials and endpoints.
	Pushover Pushover
	// Gotify contains destination-provider settings.
	Gotify Gotify
	// Cache contains local cache settings.
	Cache Cache
	// Stream contains streaming lifecycle settings.
	Stream Stream
	// Status contains status endpoint settings.
	Status Status
}

// GetBridgeConfig builds and validates the bridge runtime config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], fills in defaults for
// the optional host and timeout fields, and validates the resulting
// [BridgeConfig].
func GetBridgeConfig() (*BridgeConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	bridgeCfg := &BridgeConfig{
		Pushover: cfg.Pushover,
		Gotify:   cfg.Gotify,
		Cache:    cfg.Cache,
		Stream:   cfg.Stream,
		Status:   cfg.Status,
	}
	bridgeCfg.applyDefaults()

	return bridgeCfg, bridgeCfg.validate()
}

func (cfg *BridgeConfig) applyDefaults() {
	if cfg.Pushover.APIHost == "" {
		cfg.Pushover.APIHost = DefaultAPIHost
	}
	if cfg.Pushover.StreamHost == "" {
		cfg.Pushover.StreamHost = DefaultStreamHost
	}
	if cfg.Pushover.IconHost == "" {
		cfg.Pushover.IconHost = DefaultIconHost
	}
	if cfg.Stream.KeepAliveTimeout == 0 {
		cfg.Stream.KeepAliveTimeout = DefaultKeepAliveTimeout
	}
}
