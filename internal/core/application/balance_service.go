package application

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/stakedash/stakedash-daemon/pkg/mathutil"
)

type BalanceService interface {
	// GetBalance returns the wallet balance as an ADA display string. Any
	// provider failure degrades to "0" so the dashboard shell keeps
	// rendering.
	GetBalance(ctx context.Context) string
}

type balanceService struct {
	sessions SessionService
}

func NewBalanceService(sessions SessionService) BalanceService {
	return &balanceService{sessions: sessions}
}

func (b *balanceService) GetBalance(ctx context.Context) string {
	session, err := b.sessions.Current()
	if err != nil {
		return "0"
	}

	lovelace, err := session.Handle().GetLovelace(ctx)
	if err != nil {
		log.WithError(err).Warn("balance lookup failed, falling back to zero")
		return "0"
	}

	return mathutil.ToAda(lovelace)
}
