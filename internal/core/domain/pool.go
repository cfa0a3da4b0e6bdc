package domain

// StakePool is one entry of the stake-pool directory. The set fetched for a
// session is immutable; filtering produces derived views.
type StakePool struct {
	ID     string `json:"id"`
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
}
