// Package credentials holds the access/refresh token pair of the current
// session on top of a storage.Storage.
//
// Every operation is best-effort: persistence failures are logged and
// swallowed, reads then report no token and writes become no-ops. Presence of
// an access token is a liveness hint only; validity is known after the
// backend accepts it.
package credentials

import (
	"context"

	"github.com/dmitrijs2005/gameclient/internal/client/storage"
	"github.com/dmitrijs2005/gameclient/internal/logging"
)

// Storage keys of the token pair.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// Store is the credential store. It is safe for concurrent use as long as
// the underlying storage is.
type Store struct {
	storage storage.Storage
	log     logging.Logger
}

// NewStore returns a Store over s. A nil s behaves like storage.Unavailable.
func NewStore(s storage.Storage, log logging.Logger) *Store {
	if s == nil {
		s = storage.Unavailable{}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Store{storage: s, log: log}
}

func (s *Store) get(ctx context.Context, key string) string {
	v, err := s.storage.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "credential read failed", "key", key, "error", err)
		return ""
	}
	return v
}

// GetAccess returns the access token or "" when absent.
func (s *Store) GetAccess(ctx context.Context) string {
	return s.get(ctx, AccessTokenKey)
}

// GetRefresh returns the refresh token or "" when absent.
func (s *Store) GetRefresh(ctx context.Context) string {
	return s.get(ctx, RefreshTokenKey)
}

// Set stores a new pair. An empty refresh token keeps the stored one.
func (s *Store) Set(ctx context.Context, access, refresh string) {
	values := map[string]string{AccessTokenKey: access}
	if refresh != "" {
		values[RefreshTokenKey] = refresh
	}
	if err := storage.SetMany(ctx, s.storage, values); err != nil {
		s.log.Warn(ctx, "credential write failed", "error", err)
	}
}

// Clear forgets both tokens.
func (s *Store) Clear(ctx context.Context) {
	for _, key := range []string{AccessTokenKey, RefreshTokenKey} {
		if err := s.storage.Remove(ctx, key); err != nil {
			s.log.Warn(ctx, "credential removal failed", "key", key, "error", err)
		}
	}
}

// IsAuthenticated reports whether an access token is present.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	return s.GetAccess(ctx) != ""
}
