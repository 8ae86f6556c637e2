package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/gameclient/internal/client/models"
	"github.com/dmitrijs2005/gameclient/internal/client/transport"
	"github.com/dmitrijs2005/gameclient/internal/scoring"
)

type TournamentService struct {
	tr *transport.Transport
}

func NewTournamentService(tr *transport.Transport) *TournamentService {
	return &TournamentService{tr: tr}
}

// ScorePath returns the score submission path of a tournament.
func ScorePath(tournamentID string) string {
	return fmt.Sprintf("/tournaments/%s/score", url.PathEscape(tournamentID))
}

// SubmitScore posts a signed score to the tournament.
func (s *TournamentService) SubmitScore(ctx context.Context, tournamentID string, signed scoring.SignedScore, metadata map[string]any) (*models.ScoreReceipt, error) {
	if tournamentID == "" {
		return nil, fmt.Errorf("tournament id is required")
	}
	body := models.ScoreSubmission{
		Score:     signed.Score,
		Signature: signed.Signature,
		MatchID:   signed.MatchID,
		Timestamp: signed.Timestamp,
		Nonce:     signed.Nonce,
		Duration:  signed.Duration,
		Metadata:  metadata,
	}

	var receipt models.ScoreReceipt
	if err := s.tr.Post(ctx, ScorePath(tournamentID), body, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}
