package walletbridge

import (
	"context"

	"github.com/stakedash/stakedash-daemon/internal/core/ports"
)

// session relays the capability surface of the enabled wallet through the
// bridge. The page keeps the provider handle; the daemon only holds this
// proxy.
type session struct {
	bridge *Bridge
}

func (s *session) GetNetworkID(ctx context.Context) (int, error) {
	networkID := 0
	err := s.bridge.call(ctx, "getNetworkId", nil, &networkID)
	return networkID, err
}

func (s *session) GetUsedAddresses(ctx context.Context) ([]string, error) {
	addresses := []string{}
	err := s.bridge.call(ctx, "getUsedAddresses", nil, &addresses)
	return addresses, err
}

func (s *session) GetUnusedAddresses(ctx context.Context) ([]string, error) {
	addresses := []string{}
	err := s.bridge.call(ctx, "getUnusedAddresses", nil, &addresses)
	return addresses, err
}

func (s *session) GetRewardAddresses(ctx context.Context) ([]string, error) {
	addresses := []string{}
	err := s.bridge.call(ctx, "getRewardAddresses", nil, &addresses)
	return addresses, err
}

func (s *session) GetLovelace(ctx context.Context) (string, error) {
	lovelace := ""
	err := s.bridge.call(ctx, "getLovelace", nil, &lovelace)
	return lovelace, err
}

func (s *session) SignData(ctx context.Context, message string) (string, error) {
	signature := ""
	params := map[string]string{"message": message}
	err := s.bridge.call(ctx, "signData", params, &signature)
	return signature, err
}

func (s *session) BuildTx(ctx context.Context, recipient, lovelace string) (string, error) {
	unsignedTx := ""
	params := map[string]string{"recipient": recipient, "lovelace": lovelace}
	err := s.bridge.call(ctx, "buildTx", params, &unsignedTx)
	return unsignedTx, err
}

func (s *session) SignTx(ctx context.Context, unsignedTx string) (string, error) {
	signedTx := ""
	params := map[string]string{"tx": unsignedTx}
	err := s.bridge.call(ctx, "signTx", params, &signedTx)
	return signedTx, err
}

func (s *session) SubmitTx(ctx context.Context, signedTx string) (string, error) {
	txID := ""
	params := map[string]string{"tx": signedTx}
	err := s.bridge.call(ctx, "submitTx", params, &txID)
	return txID, err
}

var _ ports.WalletSession = (*session)(nil)
