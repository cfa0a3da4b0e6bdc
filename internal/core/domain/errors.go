package domain

import "errors"

var (
	// ErrProviderDiscovery is thrown when the host environment cannot be queried for installed wallets
	ErrProviderDiscovery = errors.New("wallet providers could not be discovered")
	// ErrConnectionDenied is thrown when the wallet provider declines to be enabled or returns no handle
	ErrConnectionDenied = errors.New("wallet connection denied by provider")
	// ErrIncompleteWalletInfo is thrown when an enabled wallet reports no network id or no used address
	ErrIncompleteWalletInfo = errors.New("wallet reported incomplete info")
	// ErrBelowMinimumAmount is thrown when a stake amount does not meet the minimum threshold
	ErrBelowMinimumAmount = errors.New("amount is below the minimum stake")
	// ErrAttestationFailed is thrown when the pre-submission message signing is rejected
	ErrAttestationFailed = errors.New("stake attestation rejected")
	// ErrSubmissionFailed is thrown when building, signing or submitting the transaction fails
	ErrSubmissionFailed = errors.New("transaction submission failed")
	// ErrHistoryFetch is thrown when the primary transaction-history fetch fails
	ErrHistoryFetch = errors.New("history could not be fetched")
	// ErrPoolFetch is thrown when the stake-pool directory fetch fails
	ErrPoolFetch = errors.New("stake pools could not be fetched")

	// ErrNoActiveSession is thrown when an operation requires a connected wallet
	ErrNoActiveSession = errors.New("no active wallet session")
	// ErrSubmissionInFlight is thrown when a submission overlaps another one on the same session
	ErrSubmissionInFlight = errors.New("another submission is in flight")
	// ErrPoolNotInDirectory is thrown when a selected pool id is not part of the fetched directory
	ErrPoolNotInDirectory = errors.New("pool is not part of the fetched directory")
)
