package pooldirectory

// Pool is one entry of the stake-pool directory.
type Pool struct {
	ID     string
	Ticker string
	Name   string
}

// Service is the contract against the stake-pool directory provider.
type Service interface {
	// FetchPools returns the directory's known pools in one bulk fetch.
	FetchPools() ([]Pool, error)
}
