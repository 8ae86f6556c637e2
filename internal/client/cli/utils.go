package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gameclient/internal/scoring"
	"github.com/shopspring/decimal"
)

// parsePayload reads "<game> <match> <score> [duration]" from args and returns
// whatever follows.
func parsePayload(args []string) (scoring.Payload, []string, error) {
	if len(args) < 3 {
		return scoring.Payload{}, nil, errUsage
	}

	score, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return scoring.Payload{}, nil, fmt.Errorf("invalid score %q", args[2])
	}
	p := scoring.Payload{GameID: args[0], MatchID: args[1], Score: score}

	rest := args[3:]
	if len(rest) > 0 && !strings.Contains(rest[0], "=") {
		d, err := strconv.ParseFloat(rest[0], 64)
		if err != nil {
			return scoring.Payload{}, nil, fmt.Errorf("invalid duration %q", rest[0])
		}
		p.Duration = scoring.Seconds(d)
		rest = rest[1:]
	}
	return p, rest, nil
}

// parseMetadata turns name=value pairs into a metadata map. Numbers and
// booleans keep their JSON type, everything else is a string.
func parseMetadata(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	m := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("metadata must be name=value, got %q", pair)
		}
		if n, err := strconv.ParseFloat(value, 64); err == nil {
			m[name] = n
		} else if b, err := strconv.ParseBool(value); err == nil {
			m[name] = b
		} else {
			m[name] = value
		}
	}
	return m, nil
}

func formatScore(v float64) string {
	return decimal.NewFromFloat(v).String()
}
