package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/thanhpk/randstr"

	"github.com/stakedash/stakedash-daemon/internal/core/domain"
	"github.com/stakedash/stakedash-daemon/internal/core/ports"
	"github.com/stakedash/stakedash-daemon/pkg/fmtutil"
)

// Session binds an enabled provider handle to its normalized identity. The
// address set is guaranteed non-empty for the lifetime of the session.
type Session struct {
	ID            string
	Provider      string
	NetworkID     int
	Addresses     []string
	RewardAddress string

	handle ports.WalletSession
}

// Address returns the canonical external address of the wallet.
func (s *Session) Address() string {
	return s.Addresses[0]
}

// Handle returns the underlying provider capability surface.
func (s *Session) Handle() ports.WalletSession {
	return s.handle
}

type SessionService interface {
	ListProviders(ctx context.Context) ([]domain.WalletInfo, error)
	Connect(ctx context.Context, providerName string) (*Session, error)
	Disconnect(ctx context.Context) error
	// Current returns the active session or domain.ErrNoActiveSession.
	Current() (*Session, error)
}

type sessionService struct {
	gateway     ports.WalletGateway
	settleDelay time.Duration

	mtx     sync.RWMutex
	current *Session
}

func NewSessionService(
	gateway ports.WalletGateway, settleDelay time.Duration,
) SessionService {
	return &sessionService{
		gateway:     gateway,
		settleDelay: settleDelay,
	}
}

func (s *sessionService) ListProviders(ctx context.Context) ([]domain.WalletInfo, error) {
	wallets, err := s.gateway.GetInstalledWallets(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderDiscovery, err)
	}
	return wallets, nil
}

func (s *sessionService) Connect(
	ctx context.Context, providerName string,
) (*Session, error) {
	handle, err := s.gateway.Enable(ctx, providerName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConnectionDenied, err)
	}
	if handle == nil {
		return nil, domain.ErrConnectionDenied
	}

	// Some providers report readiness before their internal initialization
	// completes; give them a fixed settle window before reading identity.
	if s.settleDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.settleDelay):
		}
	}

	networkID, err := handle.GetNetworkID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: network id: %v", domain.ErrIncompleteWalletInfo, err)
	}

	addresses, err := handle.GetUsedAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: used addresses: %v", domain.ErrIncompleteWalletInfo, err)
	}
	if len(addresses) <= 0 {
		return nil, fmt.Errorf("%w: wallet has no used address", domain.ErrIncompleteWalletInfo)
	}

	// The stake address is optional: delegation history degrades without it.
	rewardAddress := ""
	if rewards, err := handle.GetRewardAddresses(ctx); err == nil && len(rewards) > 0 {
		rewardAddress = rewards[0]
	}

	session := &Session{
		ID:            randstr.Hex(8),
		Provider:      providerName,
		NetworkID:     networkID,
		Addresses:     addresses,
		RewardAddress: rewardAddress,
		handle:        handle,
	}

	// A reconnect replaces the prior session; the old handle is dropped
	// without provider-side teardown.
	s.mtx.Lock()
	s.current = session
	s.mtx.Unlock()

	log.WithFields(log.Fields{
		"provider": providerName,
		"network":  domain.NetworkName(networkID),
		"address":  fmtutil.TruncateAddress(session.Address(), 12, 6),
	}).Info("wallet session established")

	return session, nil
}

func (s *sessionService) Disconnect(_ context.Context) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.current != nil {
		log.WithField("provider", s.current.Provider).Info("wallet session cleared")
	}
	s.current = nil
	return nil
}

func (s *sessionService) Current() (*Session, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if s.current == nil {
		return nil, domain.ErrNoActiveSession
	}
	return s.current, nil
}
