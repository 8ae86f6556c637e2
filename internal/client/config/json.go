package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gameclient/internal/flagx"
	"github.com/dmitrijs2005/gameclient/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer and
// zero-able fields let a file override only what it mentions.
type JsonConfig struct {
	BaseURL        string          `json:"base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	Debug          *bool           `json:"debug"`
	ScoreSecret    string          `json:"score_secret"`
	Storage        string          `json:"storage"`
	StoragePath    string          `json:"storage_path"`
	RedisURL       string          `json:"redis_url"`
}

// parseJson overlays cfg with the JSON file named by -c / -config in args.
// Without such a flag it does nothing. Panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.Debug != nil {
		cfg.Debug = *jc.Debug
	}
	if jc.ScoreSecret != "" {
		cfg.ScoreSecret = jc.ScoreSecret
	}
	if jc.Storage != "" {
		cfg.Storage = jc.Storage
	}
	if jc.StoragePath != "" {
		cfg.StoragePath = jc.StoragePath
	}
	if jc.RedisURL != "" {
		cfg.RedisURL = jc.RedisURL
	}
}
