package api

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gameclient/internal/client/credentials"
	"github.com/dmitrijs2005/gameclient/internal/client/models"
	"github.com/dmitrijs2005/gameclient/internal/client/transport"
	"github.com/dmitrijs2005/gameclient/internal/logging"
)

const (
	LoginPath    = "/auth/login"
	RegisterPath = "/auth/register"
	LogoutPath   = "/auth/logout"
	MePath       = "/auth/me"
)

// logoutTimeout bounds the fire-and-forget logout notification.
const logoutTimeout = 5 * time.Second

type AuthService struct {
	tr    *transport.Transport
	creds *credentials.Store
	log   logging.Logger
}

func NewAuthService(tr *transport.Transport, creds *credentials.Store, log logging.Logger) *AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &AuthService{tr: tr, creds: creds, log: log}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type logoutRequest struct {
	RefreshToken string `json:"refreshToken,omitempty"`
}

// Login exchanges credentials for a token pair and stores it. A 401 here is
// returned as *transport.APIError, the session is not touched. A response
// without an access token fails with ErrNoAccessToken and stores nothing.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	var res models.AuthResult
	err := s.tr.Post(ctx, LoginPath, loginRequest{Email: email, Password: password}, &res, transport.WithoutRefresh())
	if err != nil {
		return nil, err
	}
	if res.AccessToken == "" {
		return nil, ErrNoAccessToken
	}
	s.creds.Set(ctx, res.AccessToken, res.RefreshToken)
	s.log.Info(ctx, "logged in", "user", res.User.Username)
	return &res.User, nil
}

// Register creates an account. When the backend answers with a token pair the
// new session is stored right away.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	var res models.AuthResult
	req := registerRequest{Username: username, Email: email, Password: password}
	if err := s.tr.Post(ctx, RegisterPath, req, &res, transport.WithoutRefresh()); err != nil {
		return nil, err
	}
	if res.AccessToken != "" {
		s.creds.Set(ctx, res.AccessToken, res.RefreshToken)
	}
	s.log.Info(ctx, "registered", "user", res.User.Username, "session", res.AccessToken != "")
	return &res.User, nil
}

// Logout tells the backend the session is over and clears the local
// credentials. The notification is best-effort: its failure is logged and
// the local session is cleared regardless.
func (s *AuthService) Logout(ctx context.Context) {
	if s.creds.IsAuthenticated(ctx) {
		nctx, cancel := context.WithTimeout(ctx, logoutTimeout)
		req := logoutRequest{RefreshToken: s.creds.GetRefresh(ctx)}
		if err := s.tr.Post(nctx, LogoutPath, req, nil, transport.WithoutRefresh()); err != nil {
			s.log.Warn(ctx, "logout notification failed", "error", err)
		}
		cancel()
	}

	s.creds.Clear(context.WithoutCancel(ctx))
	s.log.Info(ctx, "logged out")
}

// Me returns the profile of the current session.
func (s *AuthService) Me(ctx context.Context) (*models.User, error) {
	if !s.creds.IsAuthenticated(ctx) {
		return nil, ErrNotAuthenticated
	}
	var u models.User
	if err := s.tr.Get(ctx, MePath, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// RestoreSession revalidates a stored session on startup. A stored but
// rejected session ends as transport.ErrSessionExpired with the credentials
// cleared.
func (s *AuthService) RestoreSession(ctx context.Context) (*models.User, error) {
	return s.Me(ctx)
}
