package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/gameclient/internal/client/api"
	"github.com/dmitrijs2005/gameclient/internal/client/config"
	"github.com/dmitrijs2005/gameclient/internal/client/credentials"
	"github.com/dmitrijs2005/gameclient/internal/client/models"
	"github.com/dmitrijs2005/gameclient/internal/client/storage"
	"github.com/dmitrijs2005/gameclient/internal/client/transport"
	"github.com/dmitrijs2005/gameclient/internal/logging"
	"github.com/dmitrijs2005/gameclient/internal/scoring"
)

// Client is the SDK context. It is safe for concurrent use.
type Client struct {
	cfg        *config.Config
	log        logging.Logger
	httpClient *http.Client
	storage    storage.Storage
	onLogout   func()

	creds       *credentials.Store
	transport   *transport.Transport
	signer      *scoring.Signer
	auth        *api.AuthService
	tournaments *api.TournamentService
	wallet      *api.WalletService
}

// New builds a Client from cfg. A storage that cannot be opened is logged and
// replaced by storage.Unavailable, leaving the client usable without a
// persistent session. A ScoreSecret that is set but too short fails with
// scoring.ErrWeakSecret.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Client, error) {
	c := &Client{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logging.New(os.Stderr, cfg.Debug)
	}

	if cfg.ScoreSecret != "" {
		signer, err := scoring.NewSigner(cfg.ScoreSecret)
		if err != nil {
			return nil, err
		}
		c.signer = signer
	}

	if c.storage == nil {
		s, err := openStorage(ctx, cfg)
		if err != nil {
			if errors.Is(err, ErrUnknownStorage) {
				return nil, err
			}
			c.log.Warn(ctx, "session storage unavailable, session will not persist", "storage", cfg.Storage, "error", err)
			s = storage.Unavailable{}
		}
		c.storage = s
	}

	c.creds = credentials.NewStore(c.storage, c.log)

	trOpts := []transport.Option{
		transport.WithLogger(c.log),
		transport.WithTimeout(cfg.RequestTimeout),
		transport.WithDebug(cfg.Debug),
		transport.WithLogoutHook(c.sessionExpired),
	}
	if c.httpClient != nil {
		trOpts = append(trOpts, transport.WithHTTPClient(c.httpClient))
	}
	c.transport = transport.New(cfg.BaseURL, c.creds, trOpts...)

	c.auth = api.NewAuthService(c.transport, c.creds, c.log)
	c.tournaments = api.NewTournamentService(c.transport)
	c.wallet = api.NewWalletService(c.transport)
	return c, nil
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return storage.NewMemoryStorage(), nil
	case config.StorageSQLite, "":
		return storage.OpenSQLite(ctx, cfg.StoragePath)
	case config.StorageRedis:
		return storage.OpenRedis(cfg.RedisURL, storage.DefaultRedisPrefix)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, cfg.Storage)
	}
}

func (c *Client) sessionExpired() {
	if c.onLogout != nil {
		c.onLogout()
	}
}

func (c *Client) Auth() *api.AuthService { return c.auth }

func (c *Client) Tournaments() *api.TournamentService { return c.tournaments }

func (c *Client) Wallet() *api.WalletService { return c.wallet }

func (c *Client) Credentials() *credentials.Store { return c.creds }

func (c *Client) Transport() *transport.Transport { return c.transport }

// Signer returns the score signer, nil when no secret is configured.
func (c *Client) Signer() *scoring.Signer { return c.signer }

// Sign signs p with the configured secret.
func (c *Client) Sign(p scoring.Payload) (scoring.SignedScore, error) {
	if c.signer == nil {
		return scoring.SignedScore{}, ErrSigningDisabled
	}
	return c.signer.Sign(p)
}

// SubmitMatchScore signs p and submits it to the tournament. A preset
// timestamp must lie inside the signer window; a zero one is stamped now.
func (c *Client) SubmitMatchScore(ctx context.Context, tournamentID string, p scoring.Payload, metadata map[string]any) (*models.ScoreReceipt, error) {
	if c.signer == nil {
		return nil, ErrSigningDisabled
	}
	if p.Timestamp != 0 && !c.signer.CheckTimestamp(p.Timestamp) {
		return nil, fmt.Errorf("%w: %d", ErrStaleTimestamp, p.Timestamp)
	}

	signed, err := c.signer.Sign(p)
	if err != nil {
		return nil, err
	}
	c.log.Debug(ctx, "submitting score", "tournament", tournamentID, "match", p.MatchID, "nonce", signed.Nonce)

	return c.tournaments.SubmitScore(ctx, tournamentID, signed, metadata)
}

// Close releases the storage when it holds resources.
func (c *Client) Close() error {
	if closer, ok := c.storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
