package api

import (
	"context"

	"github.com/dmitrijs2005/gameclient/internal/client/models"
	"github.com/dmitrijs2005/gameclient/internal/client/transport"
)

const BalancePath = "/wallet/balance"

type WalletService struct {
	tr *transport.Transport
}

func NewWalletService(tr *transport.Transport) *WalletService {
	return &WalletService{tr: tr}
}

func (s *WalletService) Balance(ctx context.Context) (*models.Balance, error) {
	var b models.Balance
	if err := s.tr.Get(ctx, BalancePath, &b); err != nil {
		return nil, err
	}
	return &b, nil
}
