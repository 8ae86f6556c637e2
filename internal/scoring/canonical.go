package scoring

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const zeroDuration = "0.00"

// CanonicalString renders p in the fixed field order covered by the signature.
// The nonce is used as given; callers signing a fresh payload resolve it first.
func CanonicalString(p Payload) (string, error) {
	score, err := formatScore(p.Score)
	if err != nil {
		return "", err
	}
	duration, err := formatDuration(p.Duration)
	if err != nil {
		return "", err
	}

	return strings.Join([]string{
		p.GameID,
		p.MatchID,
		score,
		duration,
		strconv.FormatInt(p.Timestamp, 10),
		p.Nonce,
	}, ":"), nil
}

// formatScore prints the shortest decimal that round-trips to v, never in
// exponent form.
func formatScore(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("%w: score %v is not finite", ErrInvalidPayload, v)
	}
	return decimal.NewFromFloat(v).String(), nil
}

// formatDuration rounds the exact binary value of v to two decimals, ties
// away from zero, which is what Number.prototype.toFixed(2) produces.
// strconv rounds ties to even and would disagree on values like 0.125.
func formatDuration(v *float64) (string, error) {
	if v == nil || *v == 0 {
		return zeroDuration, nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return "", fmt.Errorf("%w: duration %v is not finite", ErrInvalidPayload, *v)
	}

	hundredths := new(big.Rat).SetFloat64(math.Abs(*v))
	hundredths.Mul(hundredths, big.NewRat(100, 1))

	q, rem := new(big.Int).QuoRem(hundredths.Num(), hundredths.Denom(), new(big.Int))
	if rem.Lsh(rem, 1).Cmp(hundredths.Denom()) >= 0 {
		q.Add(q, big.NewInt(1))
	}

	out := decimal.NewFromBigInt(q, -2).StringFixed(2)
	if *v < 0 {
		out = "-" + out
	}
	return out, nil
}
