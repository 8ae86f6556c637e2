package fakebackend

import (
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/gameclient/internal/scoring"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Secret is the score-signing secret shared with clients under test.
const Secret = "fake-backend-score-secret"

// AccessTTL is the lifetime written into issued access tokens.
const AccessTTL = 15 * time.Minute

var jwtKey = []byte("fake-backend-jwt-key")

type account struct {
	ID       string
	Username string
	Email    string
	Password string
	Balance  decimal.Decimal
}

// Backend is the fake server state. Its exported counters are safe to read
// while requests are in flight.
type Backend struct {
	mu          sync.Mutex
	accounts    map[string]*account // by email
	access      map[string]string   // access token -> account id
	refresh     map[string]string   // refresh token -> account id
	nonces      map[string]struct{}
	tournaments map[string]string // tournament id -> game id
	scores      map[string][]float64

	signer *scoring.Signer
	server *httptest.Server

	RefreshCalls atomic.Int64
	ScoreCalls   atomic.Int64
	LogoutCalls  atomic.Int64

	refreshDelay atomic.Int64
	// RejectRefresh makes every refresh attempt fail with 401.
	RejectRefresh atomic.Bool
}

// Start runs a backend for the lifetime of t.
func Start(t testing.TB) *Backend {
	t.Helper()

	signer, err := scoring.NewSigner(Secret)
	if err != nil {
		t.Fatalf("fake backend signer: %v", err)
	}

	b := &Backend{
		accounts:    make(map[string]*account),
		access:      make(map[string]string),
		refresh:     make(map[string]string),
		nonces:      make(map[string]struct{}),
		tournaments: make(map[string]string),
		scores:      make(map[string][]float64),
		signer:      signer,
	}

	gin.SetMode(gin.TestMode)
	b.server = httptest.NewServer(b.router())
	t.Cleanup(b.server.Close)
	return b
}

// URL is the API base URL clients should be configured with.
func (b *Backend) URL() string {
	return b.server.URL + "/api"
}

// AddUser creates an account and returns its id.
func (b *Backend) AddUser(username, email, password string, balance decimal.Decimal) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.addUserLocked(username, email, password, balance)
}

func (b *Backend) addUserLocked(username, email, password string, balance decimal.Decimal) string {
	a := &account{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
		Password: password,
		Balance:  balance,
	}
	b.accounts[email] = a
	return a.ID
}

// SetRefreshDelay holds every refresh response back by d.
func (b *Backend) SetRefreshDelay(d time.Duration) {
	b.refreshDelay.Store(int64(d))
}

// AddTournament registers a tournament played in game gameID.
func (b *Backend) AddTournament(id, gameID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tournaments[id] = gameID
}

// ExpireAccessTokens invalidates every issued access token, so the next
// authenticated request gets a 401 and has to refresh.
func (b *Backend) ExpireAccessTokens() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.access)
}

// RevokeRefreshTokens invalidates every issued refresh token.
func (b *Backend) RevokeRefreshTokens() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.refresh)
}

// Scores returns the accepted scores of a tournament.
func (b *Backend) Scores(tournamentID string) []float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]float64(nil), b.scores[tournamentID]...)
}

// IssueTokens creates a token pair for the account with email, as a login
// would.
func (b *Backend) IssueTokens(email string) (access, refresh string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accounts[email]
	if !ok {
		return "", ""
	}
	return b.issueLocked(a)
}

func (b *Backend) issueLocked(a *account) (string, string) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   a.ID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtKey)
	if err != nil {
		panic(err)
	}
	refresh := uuid.NewString()

	b.access[access] = a.ID
	b.refresh[refresh] = a.ID
	return access, refresh
}

func (b *Backend) accountByID(id string) *account {
	for _, a := range b.accounts {
		if a.ID == id {
			return a
		}
	}
	return nil
}
