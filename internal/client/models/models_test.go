package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalance_DecodesNumbersExactly(t *testing.T) {
	var b Balance
	require.NoError(t, json.Unmarshal([]byte(`{"balance":1234.10,"currency":"GEM"}`), &b))

	assert.True(t, b.Amount.Equal(decimal.RequireFromString("1234.1")))
	assert.Equal(t, "1234.1 GEM", b.String())
}

func TestBalance_StringWithoutCurrency(t *testing.T) {
	b := Balance{Amount: decimal.NewFromInt(7)}
	assert.Equal(t, "7", b.String())
}

func TestScoreSubmission_OmitsEmptyOptionals(t *testing.T) {
	raw, err := json.Marshal(ScoreSubmission{Score: 10, Signature: "ab", MatchID: "m", Timestamp: 1, Nonce: "n"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"score":10,"signature":"ab","matchId":"m","timestamp":1,"nonce":"n"}`, string(raw))
}
