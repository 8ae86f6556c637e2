package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gameclient/internal/client/credentials"
	"github.com/dmitrijs2005/gameclient/internal/logging"
	"github.com/google/uuid"
)

// RequestIDHeader carries a per-call id, shared by a call and its retry.
const RequestIDHeader = "X-Request-ID"

// Transport is the authenticated JSON client. It is safe for concurrent use.
type Transport struct {
	baseURL    string
	httpClient *http.Client
	creds      *credentials.Store
	refresher  *Refresher
	timeout    time.Duration
	debug      bool
	log        logging.Logger
	onLogout   func()
}

// New returns a Transport for the API rooted at baseURL.
func New(baseURL string, creds *credentials.Store, opts ...Option) *Transport {
	t := &Transport{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		creds:      creds,
		timeout:    DefaultTimeout,
		log:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.refresher = newRefresher(t.httpClient, t.url(RefreshPath), creds, t.log, t.timeout)
	return t
}

// Refresher exposes the refresh coordinator, mainly for diagnostics.
func (t *Transport) Refresher() *Refresher {
	return t.refresher
}

// call is the per-request envelope.
type call struct {
	method    string
	url       string
	body      []byte
	requestID string
	refresh   bool
	isRetry   bool
}

type response struct {
	status int
	body   []byte
}

func (t *Transport) url(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return t.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Send issues method path with body encoded as JSON (nil for no body) and
// returns the unwrapped response, nil when the response has no body.
func (t *Transport) Send(ctx context.Context, method, path string, body any, opts ...CallOption) (json.RawMessage, error) {
	c := &call{
		method:    method,
		url:       t.url(path),
		requestID: uuid.NewString(),
		refresh:   true,
	}
	for _, opt := range opts {
		opt(c)
	}

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		c.body = payload
	}

	return t.send(ctx, c)
}

func (t *Transport) send(ctx context.Context, c *call) (json.RawMessage, error) {
	resp, err := t.attempt(ctx, c)
	if err != nil {
		return nil, err
	}

	if resp.status == http.StatusUnauthorized && c.refresh {
		if c.isRetry {
			return nil, t.expireSession(ctx, c)
		}
		if !t.refresher.AttemptRefresh(ctx) {
			if err := ctx.Err(); err != nil {
				return nil, classify(err)
			}
			return nil, t.expireSession(ctx, c)
		}
		c.isRetry = true
		return t.send(ctx, c)
	}

	if resp.status < 200 || resp.status > 299 {
		return nil, newAPIError(resp.status, resp.body)
	}
	return unwrapEnvelope(resp.body)
}

func (t *Transport) attempt(ctx context.Context, c *call) (*response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	var body io.Reader
	if c.body != nil {
		body = bytes.NewReader(c.body)
	}
	req, err := http.NewRequestWithContext(ctx, c.method, c.url, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, c.requestID)
	if c.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := t.creds.GetAccess(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	res, err := t.httpClient.Do(req)
	if err != nil {
		t.logDebug(ctx, c, "request failed", "error", err, "elapsed", time.Since(start))
		return nil, classify(err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, classify(err)
	}

	t.logDebug(ctx, c, "request finished", "status", res.StatusCode, "elapsed", time.Since(start))
	return &response{status: res.StatusCode, body: data}, nil
}

func (t *Transport) logDebug(ctx context.Context, c *call, msg string, args ...any) {
	if !t.debug {
		return
	}
	args = append([]any{"method", c.method, "url", c.url, "request_id", c.requestID, "retry", c.isRetry}, args...)
	t.log.Debug(ctx, msg, args...)
}

// expireSession ends the session after a terminal 401.
func (t *Transport) expireSession(ctx context.Context, c *call) error {
	t.creds.Clear(context.WithoutCancel(ctx))
	t.log.Warn(ctx, "session expired", "method", c.method, "url", c.url, "request_id", c.requestID)
	if t.onLogout != nil {
		t.onLogout()
	}
	return ErrSessionExpired
}

func classify(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	case errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
}

// Do sends the request and decodes the unwrapped response into out, which
// may be nil to discard it.
func (t *Transport) Do(ctx context.Context, method, path string, body, out any, opts ...CallOption) error {
	raw, err := t.Send(ctx, method, path, body, opts...)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrNetwork, err)
	}
	return nil
}

func (t *Transport) Get(ctx context.Context, path string, out any, opts ...CallOption) error {
	return t.Do(ctx, http.MethodGet, path, nil, out, opts...)
}

func (t *Transport) Post(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return t.Do(ctx, http.MethodPost, path, body, out, opts...)
}

func (t *Transport) Put(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return t.Do(ctx, http.MethodPut, path, body, out, opts...)
}

func (t *Transport) Patch(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return t.Do(ctx, http.MethodPatch, path, body, out, opts...)
}

func (t *Transport) Delete(ctx context.Context, path string, out any, opts ...CallOption) error {
	return t.Do(ctx, http.MethodDelete, path, nil, out, opts...)
}
