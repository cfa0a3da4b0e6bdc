package domain

const (
	// NetworkTestnet is the network id wallets report on the test network.
	NetworkTestnet = 0
	// NetworkMainnet is the network id wallets report on the main network.
	NetworkMainnet = 1
)

// NetworkName returns the display name of a wallet-reported network id.
func NetworkName(networkID int) string {
	switch networkID {
	case NetworkTestnet:
		return "testnet"
	case NetworkMainnet:
		return "mainnet"
	default:
		return "unknown"
	}
}

// WalletInfo describes one installed wallet-extension provider.
type WalletInfo struct {
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Version string `json:"version"`
}
