package client

import (
	"net/http"

	"github.com/dmitrijs2005/gameclient/internal/client/storage"
	"github.com/dmitrijs2005/gameclient/internal/logging"
)

type Option func(*Client)

// WithLogoutHook is invoked after the session is force-ended by a terminal 401.
func WithLogoutHook(fn func()) Option {
	return func(c *Client) {
		c.onLogout = fn
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithStorage overrides the storage selected by the config.
func WithStorage(s storage.Storage) Option {
	return func(c *Client) {
		c.storage = s
	}
}
