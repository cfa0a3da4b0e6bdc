package domain

import "time"

// TxStatus is the heuristic direction of a transaction relative to the
// wallet.
type TxStatus string

const (
	// TxOutgoing ...
	TxOutgoing TxStatus = "Outgoing"
	// TxIncoming ...
	TxIncoming TxStatus = "Incoming"
)

// TransactionItem is one row of a wallet's transaction history page. Amount
// is a display-unit decimal string with six fraction digits.
type TransactionItem struct {
	TxHash string    `json:"txHash"`
	Block  string    `json:"block"`
	Time   time.Time `json:"time"`
	Amount string    `json:"amount"`
	Status TxStatus  `json:"status"`
}

// DelegationRecord is one delegation event of the wallet's stake account.
// Block is "N/A" when the provider does not report a height.
type DelegationRecord struct {
	Transaction string `json:"transaction"`
	Epoch       string `json:"epoch"`
	Block       string `json:"block"`
	PoolID      string `json:"poolId"`
}
