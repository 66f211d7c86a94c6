package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Pushover struct {
		DeviceID   string `json:"device_id"`
		Secret     string `json:"secret"`
		APIHost    string `json:"api_host"`
		StreamHost string `json:"stream_host"`
		IconHost   string `json:"icon_host"`
	} `json:"pushover,omitempty"`

	Gotify struct {
		Host  string `json:"host"`
		Token string `json:"token"`
	} `json:"gotify,omitempty"`

	Cache struct {
		IconDir string `json:"icon_dir"`
	} `json:"cache,omitempty"`

	Stream struct {
		KeepAliveTimeout Duration `json:"keepalive_timeout"`
	} `json:"stream,omitempty"`

	Status struct {
		Address string `json:"address"`
	} `json:"status,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Pushover: Pushover{
			DeviceID:   jsonCfg.Pushover.DeviceID,
			Secret:     jsonCfg.Pushover.Secret,
			APIHost:    jsonCfg.Pushover.APIHost,
			StreamHost: jsonCfg.Pushover.StreamHost,
			IconHost:   jsonCfg.Pushover.IconHost,
		},
		Gotify: Gotify{
			Host:  jsonCfg.Gotify.Host,
			Token: jsonCfg.Gotify.Token,
		},
		Cache: Cache{
			IconDir: jsonCfg.Cache.IconDir,
		},
		Stream: Stream{
			KeepAliveTimeout: time.Duration(jsonCfg.Stream.KeepAliveTimeout),
		},
		Status: Status{
			Address: jsonCfg.Status.Address,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
