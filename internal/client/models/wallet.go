package models

import "github.com/shopspring/decimal"

// Balance is the player's wallet balance.
type Balance struct {
	Amount   decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

func (b Balance) String() string {
	if b.Currency == "" {
		return b.Amount.String()
	}
	return b.Amount.String() + " " + b.Currency
}
