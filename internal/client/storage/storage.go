// Package storage provides the pluggable key/value capability that backs the
// credential store.
//
// Persistence is best-effort by contract: an adapter may be unavailable
// (sandboxed process, server context, broken disk) and callers must degrade
// to an unauthenticated state instead of failing. Adapters:
//
//   - MemoryStorage: process-local map.
//   - SQLiteStorage: single-file database managed by goose migrations.
//   - RedisStorage:  shared storage for fleets of bots or workers.
//   - Unavailable:   always fails; models a missing medium.
//
// A missing key is not an error: Get returns ("", nil).
package storage

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by adapters whose medium cannot be reached.
var ErrUnavailable = errors.New("storage unavailable")

// Storage is a minimal string key/value capability.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// BatchSetter is implemented by adapters that can write several keys
// atomically.
type BatchSetter interface {
	SetMany(ctx context.Context, values map[string]string) error
}

// SetMany writes values through s, atomically when s implements BatchSetter
// and key by key otherwise.
func SetMany(ctx context.Context, s Storage, values map[string]string) error {
	if b, ok := s.(BatchSetter); ok {
		return b.SetMany(ctx, values)
	}
	for k, v := range values {
		if err := s.Set(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}
