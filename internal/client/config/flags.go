package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/gameclient/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-d          debug logging
//	-s string   token storage: memory, sqlite or redis
//	-p string   SQLite database path
//
// Only these flags are picked out of args, so other components can define
// their own. Panics on malformed values.
func parseFlags(cfg *Config, args []string) {
	args = flagx.Filter(args, []string{"-a", "-t", "-s", "-p"}, []string{"-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.BoolVar(&cfg.Debug, "d", cfg.Debug, "debug logging")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "token storage: memory, sqlite or redis")
	fs.StringVar(&cfg.StoragePath, "p", cfg.StoragePath, "SQLite database path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
