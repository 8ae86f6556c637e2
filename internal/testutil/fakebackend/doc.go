// Package fakebackend runs an in-process game backend for tests.
//
// It issues JWT access tokens and rotating opaque refresh tokens, wraps every
// success body in a {"data": ...} envelope and verifies submitted scores with
// a real scoring.Signer, rejecting replayed nonces.
package fakebackend
