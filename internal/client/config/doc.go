// Package config loads runtime configuration for the game client SDK and CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: GAMECLIENT_* variables, optionally seeded from a .env file.
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-d          debug logging
//	-s string   token storage: memory, sqlite or redis
//	-p string   SQLite database path
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "90s" or integer
// nanoseconds:
//
//	{
//	  "base_url": "https://play.example.com/api",
//	  "request_timeout": "30s",
//	  "debug": true,
//	  "score_secret": "...",
//	  "storage": "redis",
//	  "redis_url": "redis://localhost:6379/0"
//	}
//
// The score secret is intentionally not settable from flags so it does not
// end up in shell history or process listings.
package config
