package scoring

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/gameclient/internal/common"
)

const (
	// MinSecretLength is the minimum number of characters of a signing secret.
	MinSecretLength = 16

	// NonceSize is the number of random bytes in a generated nonce.
	NonceSize = 16
)

// Signer signs and verifies score payloads with a shared secret.
// It is safe for concurrent use.
type Signer struct {
	secret string
	now    func() time.Time
	window Window

	keyOnce sync.Once
	key     []byte
}

// Option customises a Signer.
type Option func(*Signer)

// WithClock replaces the wall clock used for timestamps and window checks.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		s.now = now
	}
}

// WithWindow replaces DefaultWindow for CheckTimestamp.
func WithWindow(w Window) Option {
	return func(s *Signer) {
		s.window = w
	}
}

// NewSigner returns a Signer for secret. It fails with ErrWeakSecret when the
// secret has fewer than MinSecretLength characters.
func NewSigner(secret string, opts ...Option) (*Signer, error) {
	if n := utf8.RuneCountInString(secret); n < MinSecretLength {
		return nil, fmt.Errorf("%w: got %d characters, need at least %d", ErrWeakSecret, n, MinSecretLength)
	}

	s := &Signer{
		secret: secret,
		now:    time.Now,
		window: DefaultWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// signingKey returns the cached HMAC key, deriving it on first use.
func (s *Signer) signingKey() []byte {
	s.keyOnce.Do(func() {
		s.key = []byte(s.secret)
	})
	return s.key
}

func (s *Signer) sign(canonical string) string {
	mac := hmac.New(sha256.New, s.signingKey())
	mac.Write([]byte(canonical))
	return hex.EncodeToString(mac.Sum(nil))
}

// Sign resolves the nonce (generating one when empty) and the timestamp
// (using the signer clock when zero) and signs the canonical form of p.
func (s *Signer) Sign(p Payload) (SignedScore, error) {
	if p.Nonce == "" {
		nonce, err := common.MakeRandHexString(NonceSize)
		if err != nil {
			return SignedScore{}, fmt.Errorf("generate nonce: %w", err)
		}
		p.Nonce = nonce
	}
	if p.Timestamp == 0 {
		p.Timestamp = s.Timestamp()
	}

	canonical, err := CanonicalString(p)
	if err != nil {
		return SignedScore{}, err
	}

	return SignedScore{Payload: p, Signature: s.sign(canonical)}, nil
}

// Verify recomputes the signature of signed with its own nonce and compares
// it in constant time with the supplied one.
func (s *Signer) Verify(signed SignedScore) VerificationResult {
	canonical, err := CanonicalString(signed.Payload)
	if err != nil {
		return VerificationResult{Valid: false, Error: err.Error()}
	}

	if !equalSignatures(s.sign(canonical), signed.Signature) {
		return VerificationResult{Valid: false, Error: MismatchError}
	}
	return VerificationResult{Valid: true}
}

// equalSignatures compares in constant time for equal lengths. Signature
// length is public.
func equalSignatures(expected, actual string) bool {
	return subtle.ConstantTimeCompare([]byte(expected), []byte(actual)) == 1
}

// Timestamp returns the signer clock as Unix seconds.
func (s *Signer) Timestamp() int64 {
	return s.now().Unix()
}

// CheckTimestamp reports whether ts lies inside the signer window relative to
// the signer clock.
func (s *Signer) CheckTimestamp(ts int64) bool {
	return s.window.Contains(ts, s.Timestamp())
}
