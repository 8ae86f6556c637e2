package client

import "errors"

var (
	// ErrSigningDisabled is returned by score operations when no score secret
	// is configured.
	ErrSigningDisabled = errors.New("score signing is not configured")

	// ErrStaleTimestamp is returned when a payload timestamp lies outside the
	// accepted window.
	ErrStaleTimestamp = errors.New("score timestamp is outside the accepted window")

	// ErrUnknownStorage is returned for an unsupported config.Config.Storage.
	ErrUnknownStorage = errors.New("unknown storage backend")
)
