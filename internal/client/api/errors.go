package api

import "errors"

// ErrNotAuthenticated is returned when an operation needs a session and no
// access token is stored.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrNoAccessToken is returned when a login response carries no access token.
var ErrNoAccessToken = errors.New("login response carries no access token")
