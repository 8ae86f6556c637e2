package models

import "time"

// ScoreSubmission is the body of POST /tournaments/{id}/score.
type ScoreSubmission struct {
	Score     float64        `json:"score"`
	Signature string         `json:"signature"`
	MatchID   string         `json:"matchId"`
	Timestamp int64          `json:"timestamp"`
	Nonce     string         `json:"nonce"`
	Duration  *float64       `json:"duration,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// ScoreReceipt is the backend acknowledgement of an accepted score.
type ScoreReceipt struct {
	ID           string    `json:"id"`
	TournamentID string    `json:"tournamentId"`
	Score        float64   `json:"score"`
	Rank         int       `json:"rank,omitempty"`
	AcceptedAt   time.Time `json:"acceptedAt"`
}
