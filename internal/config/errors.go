package config

import "errors"

// Validation errors returned by [BridgeConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidPushoverConfigs indicates missing origin-provider settings
	// (for example, empty device id or session secret).
	ErrInvalidPushoverConfigs = errors.New("invalid pushover configuration")
	// ErrInvalidGotifyConfigs indicates missing destination-provider settings
	// (for example, empty host or application token).
	ErrInvalidGotifyConfigs = errors.New("invalid gotify configuration")
	// ErrInvalidStreamConfigs indicates invalid streaming settings
	// (for example, a negative keep-alive timeout).
	ErrInvalidStreamConfigs = errors.New("invalid stream configuration")
)
