package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/gameclient/internal/common"
)

var errEmptyInput = errors.New("input must not be empty")

// Register prompts for a username, an email and a password and creates an
// account. The backend may open a session right away.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if userName == "" || email == "" {
		return errEmptyInput
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.client.Auth().Register(ctx, userName, email, string(password))
	if err != nil {
		return err
	}

	if a.isLoggedIn() {
		a.setUser(u.Username)
		printlnFn("Registered and logged in as", u.Username)
	} else {
		printlnFn("Registered, please log in")
	}
	return nil
}

// Login prompts for credentials and opens a session. The password is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		return errEmptyInput
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.client.Auth().Login(ctx, email, string(password))
	if err != nil {
		return fmt.Errorf("login unsuccessful: %w", err)
	}

	a.setUser(u.Username)
	printlnFn("Logged in as", u.Username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.client.Auth().Logout(ctx)
	a.setUser("")
	printlnFn("Logged out")
	return nil
}

// Status prints who is logged in, when the access token expires and how
// many token refreshes ran in this process.
func (a *App) Status(ctx context.Context) error {
	creds := a.client.Credentials()
	if !creds.IsAuthenticated(ctx) {
		printlnFn("Not logged in")
		return nil
	}

	name := a.user()
	if name == "" {
		name = "unknown user"
	}
	printlnFn("Logged in as", name)

	if claims, ok := creds.Claims(ctx); ok && !claims.ExpiresAt.IsZero() {
		state := "valid"
		if claims.Expired(time.Now()) {
			state = "expired, refreshed on next request"
		}
		printlnFn(fmt.Sprintf("Access token expires at %s (%s)", claims.ExpiresAt.Format(time.RFC3339), state))
	}

	stats := a.client.Transport().Refresher().Stats()
	printlnFn(fmt.Sprintf("Token refreshes: %d started, %d failed", stats.Started, stats.Failed))
	return nil
}
