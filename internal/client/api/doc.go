// Package api wraps the game backend endpoints on top of the authenticated
// transport: authentication, tournament score submission and the wallet.
package api
