package credentials

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is what the client can read from a JWT access token without
// the signing key. It is informational only.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry earlier than now.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Claims decodes the stored access token without verifying its signature.
// It returns false when there is no token or it is not a JWT.
func (s *Store) Claims(ctx context.Context) (TokenClaims, bool) {
	raw := s.GetAccess(ctx)
	if raw == "" {
		return TokenClaims{}, false
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		s.log.Debug(ctx, "access token is not a readable JWT", "error", err)
		return TokenClaims{}, false
	}

	out := TokenClaims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, true
}
