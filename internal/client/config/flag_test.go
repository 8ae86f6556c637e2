package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	base := Config{
		BaseURL:        "http://default",
		RequestTimeout: 1500 * time.Millisecond,
		Storage:        StorageSQLite,
		StoragePath:    "session.db",
	}

	tests := []struct {
		expected    Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://127.0.0.1:9090", "-t", "10", "-d", "-s", "memory", "-p", "x.db"},
			expected: Config{
				BaseURL: "http://127.0.0.1:9090", RequestTimeout: 10 * time.Second, Debug: true,
				Storage: StorageMemory, StoragePath: "x.db",
			},
		},
		{
			name:     "no flags keeps sub-second timeout",
			args:     []string{},
			expected: base,
		},
		{
			name: "unrelated flags ignored",
			args: []string{"-c", "cfg.json", "-x", "y", "-a", "http://other"},
			expected: Config{
				BaseURL: "http://other", RequestTimeout: 1500 * time.Millisecond,
				Storage: StorageSQLite, StoragePath: "session.db",
			},
		},
		{name: "incorrect timeout", args: []string{"-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(&cfg, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(&cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
