// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the merged [StructuredConfig] satisfies all
// application invariants before it is projected into a runtime view.
//
// Currently a no-op placeholder; cross-source rules live on the
// [BridgeConfig] view instead.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *BridgeConfig) validate() error {
	if cfg.Pushover.DeviceID == "" || cfg.Pushover.Secret == "" {
		return ErrInvalidPushoverConfigs
	}

	if cfg.Gotify.Host == "" || cfg.Gotify.Token == "" {
		return ErrInvalidGotifyConfigs
	}

	if cfg.Stream.KeepAliveTimeout < 0 {
		return ErrInvalidStreamConfigs
	}

	return nil
}
