// Package cli provides the interactive game client command-line tool.
//
// It wires configuration and the client SDK into a REPL. On start it tries
// to restore a stored session, then executes user commands until exit:
//
//   - register / login / logout
//   - status: current user, token expiry and refresh counters
//   - balance: wallet balance
//   - sign: sign a score payload and print it
//   - submit: sign a score payload and post it to a tournament
//
// A session force-ended by the backend prints a notice and drops the prompt
// back to the logged-out state.
package cli
