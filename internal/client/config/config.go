package config

import "time"

// Storage backends for the credential pair.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// Config holds runtime settings for the game client SDK and CLI.
//
// Fields:
//   - BaseURL: REST API root, e.g. "https://play.example.com/api".
//   - RequestTimeout: deadline of a single HTTP attempt.
//   - Debug: verbose request logging; never changes behavior.
//   - ScoreSecret: shared HMAC secret for score signing (empty disables signing).
//   - Storage: where tokens persist: memory, sqlite or redis.
//   - StoragePath: SQLite database file (Storage == sqlite).
//   - RedisURL: redis:// URL (Storage == redis).
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	Debug          bool
	ScoreSecret    string
	Storage        string
	StoragePath    string
	RedisURL       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 120 * time.Second
	c.Debug = false
	c.Storage = StorageSQLite
	c.StoragePath = "session.db"
}

// LoadConfig constructs a Config from defaults, then overlays the
// environment, an optional JSON file and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, ".env")
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
