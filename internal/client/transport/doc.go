// Package transport is the authenticated request pipeline of the SDK.
//
// A Transport sends JSON requests to the backend, attaching the stored
// access token as a bearer header. When the backend answers 401 it asks the
// Refresher for a new token pair and re-sends the request exactly once; a
// second 401, or a failed refresh, ends the session: credentials are cleared,
// the logout hook fires and the call fails with ErrSessionExpired.
//
// Concurrent calls that hit 401 together share one refresh (single-flight),
// so the backend sees a single POST /auth/refresh and every caller observes
// the same outcome.
//
// Each HTTP attempt has its own deadline. A timeout fails only that call
// with ErrTimeout; it never cancels sibling calls or a shared refresh.
//
// Successful responses are unwrapped from the {"data": ...} envelope when
// present. Error responses become *APIError whose message is taken from the
// body's "message", then "error", then "Request failed (<status>)".
package transport
