package client

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/gameclient/internal/client/config"
	"github.com/dmitrijs2005/gameclient/internal/client/storage"
	"github.com/dmitrijs2005/gameclient/internal/client/transport"
	"github.com/dmitrijs2005/gameclient/internal/logging"
	"github.com/dmitrijs2005/gameclient/internal/scoring"
	"github.com/dmitrijs2005/gameclient/internal/testutil/fakebackend"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	email    = "player@example.com"
	password = "correct-horse"
)

func testConfig(b *fakebackend.Backend) *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.BaseURL = b.URL()
	cfg.RequestTimeout = 5 * time.Second
	cfg.Storage = config.StorageMemory
	cfg.ScoreSecret = fakebackend.Secret
	return cfg
}

func startBackend(t *testing.T) *fakebackend.Backend {
	t.Helper()
	b := fakebackend.Start(t)
	b.AddUser("player", email, password, decimal.NewFromInt(10))
	b.AddTournament("weekly", "g1")
	return b
}

func newClient(t *testing.T, cfg *config.Config, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithLogger(logging.Nop())}, opts...)
	c, err := New(context.Background(), cfg, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClient_SubmitMatchScore(t *testing.T) {
	b := startBackend(t)
	c := newClient(t, testConfig(b))
	ctx := context.Background()

	_, err := c.Auth().Login(ctx, email, password)
	require.NoError(t, err)

	receipt, err := c.SubmitMatchScore(ctx, "weekly", scoring.Payload{
		GameID:   "g1",
		MatchID:  "match-1",
		Score:    4200,
		Duration: scoring.Seconds(61.25),
	}, map[string]any{"level": 3})
	require.NoError(t, err)
	assert.Equal(t, "weekly", receipt.TournamentID)
	assert.Equal(t, []float64{4200}, b.Scores("weekly"))
}

func TestClient_SubmitMatchScoreRejectsStaleTimestamp(t *testing.T) {
	b := startBackend(t)
	c := newClient(t, testConfig(b))

	_, err := c.SubmitMatchScore(context.Background(), "weekly", scoring.Payload{
		GameID:    "g1",
		MatchID:   "m",
		Score:     1,
		Timestamp: time.Now().Add(-10 * time.Minute).Unix(),
	}, nil)
	require.ErrorIs(t, err, ErrStaleTimestamp)
	assert.Zero(t, b.ScoreCalls.Load())
}

func TestClient_SigningDisabled(t *testing.T) {
	b := startBackend(t)
	cfg := testConfig(b)
	cfg.ScoreSecret = ""
	c := newClient(t, cfg)

	assert.Nil(t, c.Signer())
	_, err := c.Sign(scoring.Payload{GameID: "g", MatchID: "m"})
	assert.ErrorIs(t, err, ErrSigningDisabled)
	_, err = c.SubmitMatchScore(context.Background(), "weekly", scoring.Payload{}, nil)
	assert.ErrorIs(t, err, ErrSigningDisabled)
}

func TestNew_WeakSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Storage = config.StorageMemory
	cfg.ScoreSecret = "short"

	_, err := New(context.Background(), cfg, WithLogger(logging.Nop()))
	assert.ErrorIs(t, err, scoring.ErrWeakSecret)
}

func TestNew_UnknownStorage(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Storage = "floppy"

	_, err := New(context.Background(), cfg, WithLogger(logging.Nop()))
	assert.ErrorIs(t, err, ErrUnknownStorage)
}

func TestNew_BrokenStorageDegrades(t *testing.T) {
	b := startBackend(t)
	cfg := testConfig(b)
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o600))
	cfg.Storage = config.StorageSQLite
	cfg.StoragePath = filepath.Join(blocker, "session.db")

	c := newClient(t, cfg)
	ctx := context.Background()

	_, err := c.Auth().Login(ctx, email, password)
	require.NoError(t, err)
	assert.False(t, c.Credentials().IsAuthenticated(ctx), "nothing can be stored")
}

func TestClient_SQLiteSessionSurvivesRestart(t *testing.T) {
	b := startBackend(t)
	cfg := testConfig(b)
	cfg.Storage = config.StorageSQLite
	cfg.StoragePath = filepath.Join(t.TempDir(), "nested", "session.db")
	ctx := context.Background()

	first, err := New(ctx, cfg, WithLogger(logging.Nop()))
	require.NoError(t, err)
	_, err = first.Auth().Login(ctx, email, password)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second := newClient(t, cfg)
	u, err := second.Auth().RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "player", u.Username)
}

func TestClient_LogoutHookOnExpiry(t *testing.T) {
	b := startBackend(t)
	var hooks atomic.Int64
	c := newClient(t, testConfig(b), WithLogoutHook(func() { hooks.Add(1) }))
	ctx := context.Background()

	_, err := c.Auth().Login(ctx, email, password)
	require.NoError(t, err)

	b.ExpireAccessTokens()
	b.RevokeRefreshTokens()

	_, err = c.Wallet().Balance(ctx)
	require.ErrorIs(t, err, transport.ErrSessionExpired)
	assert.EqualValues(t, 1, hooks.Load())
	assert.False(t, c.Credentials().IsAuthenticated(ctx))
}

func TestClient_WithStorageOverride(t *testing.T) {
	b := startBackend(t)
	mem := storage.NewMemoryStorage()
	c := newClient(t, testConfig(b), WithStorage(mem))
	ctx := context.Background()

	_, err := c.Auth().Login(ctx, email, password)
	require.NoError(t, err)

	v, err := mem.Get(ctx, "access_token")
	require.NoError(t, err)
	assert.NotEmpty(t, v)
}
