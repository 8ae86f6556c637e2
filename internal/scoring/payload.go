package scoring

// Payload is the score record produced by game logic when a match ends.
type Payload struct {
	GameID    string   `json:"gameId"`
	MatchID   string   `json:"matchId"`
	Score     float64  `json:"score"`
	Duration  *float64 `json:"duration,omitempty"`
	Timestamp int64    `json:"timestamp"`
	Nonce     string   `json:"nonce,omitempty"`
}

// SignedScore is a Payload with its nonce resolved and its signature attached.
type SignedScore struct {
	Payload
	Signature string `json:"signature"`
}

// VerificationResult reports the outcome of Signer.Verify.
type VerificationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Seconds is a helper for filling Payload.Duration.
func Seconds(v float64) *float64 {
	return &v
}
