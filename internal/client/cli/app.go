package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/gameclient/internal/client/api"
	"github.com/dmitrijs2005/gameclient/internal/client/client"
	"github.com/dmitrijs2005/gameclient/internal/client/config"
	"github.com/dmitrijs2005/gameclient/internal/logging"
)

type App struct {
	config *config.Config
	client *client.Client
	reader *bufio.Reader

	mu       sync.Mutex
	userName string
}

// NewApp builds the SDK client from c and binds it to standard input.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, os.Stdin, client.WithLogger(logging.New(os.Stderr, c.Debug)))
}

func newApp(ctx context.Context, c *config.Config, in io.Reader, opts ...client.Option) (*App, error) {
	a := &App{config: c, reader: bufio.NewReader(in)}

	opts = append(opts, client.WithLogoutHook(a.onSessionExpired))
	sdk, err := client.New(ctx, c, opts...)
	if err != nil {
		return nil, err
	}
	a.client = sdk
	return a, nil
}

// Run restores a stored session if there is one and runs the REPL until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	printlnFn("Welcome to the game client (type 'help' for commands)")
	a.restore(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) restore(ctx context.Context) {
	u, err := a.client.Auth().RestoreSession(ctx)
	switch {
	case err == nil:
		a.setUser(u.Username)
		printlnFn("Session restored for", u.Username)
	case errors.Is(err, api.ErrNotAuthenticated):
	default:
		printlnFn("Could not restore session:", err)
	}
}

// onSessionExpired runs after the backend rejected the session for good.
func (a *App) onSessionExpired() {
	a.setUser("")
	printlnFn("Session expired, please log in again.")
}

func (a *App) setUser(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.userName = name
}

func (a *App) user() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userName
}

func (a *App) isLoggedIn() bool {
	return a.client.Credentials().IsAuthenticated(context.Background())
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	name := a.user()
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("(%s)", name)
}
