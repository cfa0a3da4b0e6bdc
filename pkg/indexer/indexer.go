package indexer

import "fmt"

// TxSummary is one entry of a paginated address-transaction listing, ordered
// newest first by the provider.
type TxSummary struct {
	TxHash      string
	TxIndex     int
	BlockHeight int
}

// TxDetail enriches a TxSummary with block time and the value of the
// transaction's first output, expressed in base units.
type TxDetail struct {
	Hash         string
	BlockHeight  int
	BlockTime    int64
	OutputAmount string
}

// Delegation is a single delegation event of a stake account. BlockHeight is
// zero when the provider does not report it.
type Delegation struct {
	TxHash      string
	ActiveEpoch int
	BlockHeight int
	PoolID      string
}

// Service is the read-only contract against the chain indexer.
type Service interface {
	// LatestEpoch returns the current epoch number of the network.
	LatestEpoch() (int, error)
	// AddressTransactions returns one page of the address's transactions,
	// newest first, along with the total number of transactions known for
	// the address. An address the indexer has never seen yields an empty
	// page and a zero total, not an error.
	AddressTransactions(address string, page, count int) ([]TxSummary, int, error)
	// Transaction returns the detail of a single transaction.
	Transaction(hash string) (TxDetail, error)
	// TransactionInputs returns the addresses funding the transaction's
	// inputs.
	TransactionInputs(hash string) ([]string, error)
	// AccountDelegations returns all delegation events of a stake account.
	AccountDelegations(stakeAddress string) ([]Delegation, error)
}

// StatusError reports a non-success response from the indexer.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("indexer: status %d: %s", e.StatusCode, e.Body)
}
