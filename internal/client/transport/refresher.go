package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/gameclient/internal/client/credentials"
	"github.com/dmitrijs2005/gameclient/internal/logging"
	"golang.org/x/sync/singleflight"
)

// RefreshPath is the backend endpoint exchanging a refresh token for a new pair.
const RefreshPath = "/auth/refresh"

const refreshKey = "refresh"

// RefreshStats counts refresher activity.
type RefreshStats struct {
	// Started is the number of refresh operations actually executed.
	Started int64
	// Failed is how many of them resolved to false.
	Failed int64
	// Waiting is the number of callers currently inside AttemptRefresh.
	Waiting int64
}

// Refresher runs at most one token refresh at a time. Callers arriving while
// a refresh is in flight wait for it and receive its result.
type Refresher struct {
	group   singleflight.Group
	client  *http.Client
	url     string
	creds   *credentials.Store
	log     logging.Logger
	timeout time.Duration

	started atomic.Int64
	failed  atomic.Int64
	waiting atomic.Int64
}

func newRefresher(client *http.Client, url string, creds *credentials.Store, log logging.Logger, timeout time.Duration) *Refresher {
	return &Refresher{
		client:  client,
		url:     url,
		creds:   creds,
		log:     log,
		timeout: timeout,
	}
}

// AttemptRefresh refreshes the token pair, joining a refresh already in
// flight if there is one. It never returns an error: every failure is false.
//
// The refresh is detached from ctx cancellation and bounded by the refresher
// timeout instead. If ctx ends first, this caller stops waiting and gets
// false while the shared refresh carries on for the others.
func (r *Refresher) AttemptRefresh(ctx context.Context) bool {
	r.waiting.Add(1)
	defer r.waiting.Add(-1)

	ch := r.group.DoChan(refreshKey, func() (any, error) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
		defer cancel()

		r.started.Add(1)
		ok := r.doRefresh(rctx)
		if !ok {
			r.failed.Add(1)
		}
		return ok, nil
	})

	select {
	case res := <-ch:
		ok, _ := res.Val.(bool)
		return ok
	case <-ctx.Done():
		return false
	}
}

// Stats returns a snapshot of the counters.
func (r *Refresher) Stats() RefreshStats {
	return RefreshStats{
		Started: r.started.Load(),
		Failed:  r.failed.Load(),
		Waiting: r.waiting.Load(),
	}
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type tokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (r *Refresher) doRefresh(ctx context.Context) bool {
	refreshToken := r.creds.GetRefresh(ctx)
	if refreshToken == "" {
		r.log.Debug(ctx, "no refresh token, skipping refresh")
		return false
	}

	pair, err := r.exchange(ctx, refreshToken)
	if err != nil {
		r.log.Warn(ctx, "token refresh failed", "error", err)
		return false
	}

	r.creds.Set(ctx, pair.AccessToken, pair.RefreshToken)
	r.log.Debug(ctx, "token refreshed")
	return true
}

func (r *Refresher) exchange(ctx context.Context, refreshToken string) (*tokenPair, error) {
	body, err := json.Marshal(refreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("refresh rejected: %w", newAPIError(resp.StatusCode, data))
	}

	raw, err := unwrapEnvelope(data)
	if err != nil {
		return nil, err
	}
	var pair tokenPair
	if err := json.Unmarshal(raw, &pair); err != nil {
		return nil, fmt.Errorf("decode refresh response: %w", err)
	}
	if pair.AccessToken == "" {
		return nil, fmt.Errorf("refresh response carries no access token")
	}
	return &pair, nil
}
