package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var errUsage = errors.New("wrong arguments, type 'help' for usage")

func (a *App) Balance(ctx context.Context) error {
	b, err := a.client.Wallet().Balance(ctx)
	if err != nil {
		return err
	}
	printlnFn("Balance:", b.String())
	return nil
}

// Sign signs a payload locally and prints the signed record.
// Usage: sign <game> <match> <score> [duration]
func (a *App) Sign(_ context.Context, args []string) error {
	p, rest, err := parsePayload(args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return errUsage
	}

	signed, err := a.client.Sign(p)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(signed, "", "  ")
	if err != nil {
		return err
	}
	printlnFn(string(out))
	return nil
}

// Submit signs a payload and posts it to a tournament.
// Usage: submit <tournament> <game> <match> <score> [duration] [key=value ...]
func (a *App) Submit(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errUsage
	}
	tournamentID := args[0]

	p, rest, err := parsePayload(args[1:])
	if err != nil {
		return err
	}
	metadata, err := parseMetadata(rest)
	if err != nil {
		return err
	}

	receipt, err := a.client.SubmitMatchScore(ctx, tournamentID, p, metadata)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Score %s accepted (receipt %s)", formatScore(receipt.Score), receipt.ID)
	if receipt.Rank > 0 {
		msg += fmt.Sprintf(", rank %d", receipt.Rank)
	}
	printlnFn(msg)
	return nil
}
