package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognised by parseEnv.
const (
	EnvBaseURL        = "GAMECLIENT_BASE_URL"
	EnvRequestTimeout = "GAMECLIENT_REQUEST_TIMEOUT"
	EnvDebug          = "GAMECLIENT_DEBUG"
	EnvScoreSecret    = "GAMECLIENT_SCORE_SECRET"
	EnvStorage        = "GAMECLIENT_STORAGE"
	EnvStoragePath    = "GAMECLIENT_STORAGE_PATH"
	EnvRedisURL       = "GAMECLIENT_REDIS_URL"
)

// parseEnv overlays cfg with GAMECLIENT_* variables. When dotenv names an
// existing file it is loaded first; variables already set in the process
// environment are not overridden by it.
//
// Panics on a malformed dotenv file or unparsable values.
func parseEnv(cfg *Config, dotenv string) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	if v, ok := os.LookupEnv(EnvBaseURL); ok {
		cfg.BaseURL = v
	}
	if v, ok := os.LookupEnv(EnvRequestTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := os.LookupEnv(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		cfg.Debug = b
	}
	if v, ok := os.LookupEnv(EnvScoreSecret); ok {
		cfg.ScoreSecret = v
	}
	if v, ok := os.LookupEnv(EnvStorage); ok {
		cfg.Storage = v
	}
	if v, ok := os.LookupEnv(EnvStoragePath); ok {
		cfg.StoragePath = v
	}
	if v, ok := os.LookupEnv(EnvRedisURL); ok {
		cfg.RedisURL = v
	}
}
