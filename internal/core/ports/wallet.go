package ports

import (
	"context"

	"github.com/stakedash/stakedash-daemon/internal/core/domain"
)

// WalletSession is the capability surface of one enabled wallet extension.
// It captures exactly the methods the application uses; providers that cannot
// satisfy it are rejected at the boundary instead of being duck-typed.
type WalletSession interface {
	GetNetworkID(ctx context.Context) (int, error)
	GetUsedAddresses(ctx context.Context) ([]string, error)
	GetUnusedAddresses(ctx context.Context) ([]string, error)
	GetRewardAddresses(ctx context.Context) ([]string, error)
	// GetLovelace returns the wallet balance in base units.
	GetLovelace(ctx context.Context) (string, error)
	// SignData signs an opaque message with the wallet's key and returns the
	// signature. Used for the pre-submission attestation step.
	SignData(ctx context.Context, message string) (string, error)
	// BuildTx builds a single-output value transfer of lovelace base units
	// to recipient and returns the unsigned transaction as an opaque string.
	BuildTx(ctx context.Context, recipient, lovelace string) (string, error)
	SignTx(ctx context.Context, unsignedTx string) (string, error)
	// SubmitTx broadcasts a signed transaction and returns its identifier.
	SubmitTx(ctx context.Context, signedTx string) (string, error)
}

// WalletGateway discovers and enables wallet-extension providers in the host
// environment.
type WalletGateway interface {
	GetInstalledWallets(ctx context.Context) ([]domain.WalletInfo, error)
	Enable(ctx context.Context, name string) (WalletSession, error)
}
