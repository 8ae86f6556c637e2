// Package client assembles the game client SDK: storage, credentials,
// authenticated transport, score signer and API services, built once from a
// config.Config and shared by everything in the process.
//
// Use New to build a Client, call Auth/Wallet/Tournaments for backend access,
// SubmitMatchScore to sign and post a score in one step, and Close when done.
package client
