package transport

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/gameclient/internal/logging"
)

// DefaultTimeout bounds a single HTTP attempt when no timeout is configured.
const DefaultTimeout = 120 * time.Second

type Option func(*Transport)

// WithHTTPClient replaces the HTTP client. Its own Timeout should be zero;
// deadlines are applied per attempt by the Transport.
func WithHTTPClient(c *http.Client) Option {
	return func(t *Transport) {
		t.httpClient = c
	}
}

func WithLogger(l logging.Logger) Option {
	return func(t *Transport) {
		t.log = l
	}
}

// WithTimeout sets the deadline of each HTTP attempt and of a refresh.
func WithTimeout(d time.Duration) Option {
	return func(t *Transport) {
		if d > 0 {
			t.timeout = d
		}
	}
}

// WithDebug turns on per-request debug logging.
func WithDebug(debug bool) Option {
	return func(t *Transport) {
		t.debug = debug
	}
}

// WithLogoutHook registers fn to run after a terminal 401, once per failed
// call, after credentials have been cleared.
func WithLogoutHook(fn func()) Option {
	return func(t *Transport) {
		t.onLogout = fn
	}
}

// CallOption adjusts a single call.
type CallOption func(*call)

// WithoutRefresh makes a 401 an ordinary *APIError for this call. Login and
// registration use it: there a 401 means bad credentials, not an expired
// session.
func WithoutRefresh() CallOption {
	return func(c *call) {
		c.refresh = false
	}
}
