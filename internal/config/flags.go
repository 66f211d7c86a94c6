package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-device-id pushover open-client device id
//	-secret pushover session secret
//	-api-host pushover REST API base URL
//	-stream-host pushover websocket stream URL
//	-icon-host pushover icon base URL
//	-gotify-host gotify server base URL
//	-gotify-token gotify application token
//	-icon-dir local icon cache directory
//	-keepalive keep-alive timeout (e.g., "60s", "2m")
//	-status-address status server address in format [host]:[port]
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var deviceID string
	var secret string
	var apiHost string
	var streamHost string
	var iconHost string
	var gotifyHost string
	var gotifyToken string
	var iconDir string
	var keepAlive time.Duration
	var statusAddress string
	var jsonConfigPath string

	flag.StringVar(&deviceID, "device-id", "", "Pushover device id")
	flag.StringVar(&secret, "secret", "", "Pushover session secret")
	flag.StringVar(&apiHost, "api-host", "", "Pushover REST API base URL")
	flag.StringVar(&streamHost, "stream-host", "", "Pushover websocket stream URL")
	flag.StringVar(&iconHost, "icon-host", "", "Pushover icon base URL")
	flag.StringVar(&gotifyHost, "gotify-host", "", "Gotify server base URL")
	flag.StringVar(&gotifyToken, "gotify-token", "", "Gotify application token")
	flag.StringVar(&iconDir, "icon-dir", "", "Icon cache directory")
	flag.DurationVar(&keepAlive, "keepalive", 0, "Keep-alive timeout (e.g., 60s, 2m)")
	flag.StringVar(&statusAddress, "status-address", "", "Status server address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Pushover: Pushover{
			DeviceID:   deviceID,
			Secret:     secret,
			APIHost:    apiHost,
			StreamHost: streamHost,
			IconHost:   iconHost,
		},
		Gotify: Gotify{
			Host:  gotifyHost,
			Token: gotifyToken,
		},
		Cache: Cache{
			IconDir: iconDir,
		},
		Stream: Stream{
			KeepAliveTimeout: keepAlive,
		},
		Status: Status{
			Address: statusAddress,
		},
		JSONFilePath: jsonConfigPath,
	}
}
