// Package scoring implements tamper-evident score submissions.
//
// A Signer holds a shared secret and turns a Payload into a SignedScore by
// computing HMAC-SHA256 over a canonical string:
//
//	gameId:matchId:score:duration:timestamp:nonce
//
// score is rendered as a plain decimal (no exponent), duration with exactly
// two decimals ("0.00" when absent) and timestamp as Unix seconds. Any server
// holding the same secret reproduces the signature byte-for-byte.
//
// Verification on the client is advisory; the backend is authoritative and is
// assumed to reject reused nonces. Timestamp windows (see Window) are a local
// sanity check against clock tampering, not replay protection.
package scoring
