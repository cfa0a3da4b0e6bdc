package application

import (
	"context"
	"errors"
	"sync"

	"github.com/stakedash/stakedash-daemon/internal/core/domain"
	"github.com/stakedash/stakedash-daemon/internal/core/ports"
	"github.com/stakedash/stakedash-daemon/pkg/indexer"
	"github.com/stakedash/stakedash-daemon/pkg/pooldirectory"
)

// mockWalletSession records every capability call and answers from canned
// values.
type mockWalletSession struct {
	mtx   sync.Mutex
	calls []string

	networkID     int
	addresses     []string
	rewardAddress string
	lovelace      string

	signDataErr error
	buildErr    error
	signTxErr   error
	submitErr   error
	balanceErr  error

	signedMessages []string
	lastSubmitted  string
	submitHook     func()
	txID           string
}

func newMockWalletSession() *mockWalletSession {
	return &mockWalletSession{
		networkID:     domain.NetworkMainnet,
		addresses:     []string{"addr1main", "addr1change"},
		rewardAddress: "stake1main",
		lovelace:      "42000000",
		txID:          "deadbeef",
	}
}

func (m *mockWalletSession) record(call string) {
	m.mtx.Lock()
	m.calls = append(m.calls, call)
	m.mtx.Unlock()
}

func (m *mockWalletSession) recorded() []string {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return append([]string{}, m.calls...)
}

func (m *mockWalletSession) GetNetworkID(_ context.Context) (int, error) {
	m.record("getNetworkId")
	return m.networkID, nil
}

func (m *mockWalletSession) GetUsedAddresses(_ context.Context) ([]string, error) {
	m.record("getUsedAddresses")
	return m.addresses, nil
}

func (m *mockWalletSession) GetUnusedAddresses(_ context.Context) ([]string, error) {
	m.record("getUnusedAddresses")
	return nil, nil
}

func (m *mockWalletSession) GetRewardAddresses(_ context.Context) ([]string, error) {
	m.record("getRewardAddresses")
	if m.rewardAddress == "" {
		return nil, nil
	}
	return []string{m.rewardAddress}, nil
}

func (m *mockWalletSession) GetLovelace(_ context.Context) (string, error) {
	m.record("getLovelace")
	if m.balanceErr != nil {
		return "", m.balanceErr
	}
	return m.lovelace, nil
}

func (m *mockWalletSession) SignData(_ context.Context, message string) (string, error) {
	m.record("signData")
	if m.signDataErr != nil {
		return "", m.signDataErr
	}
	m.signedMessages = append(m.signedMessages, message)
	return "signature", nil
}

func (m *mockWalletSession) BuildTx(_ context.Context, recipient, lovelace string) (string, error) {
	m.record("buildTx")
	if m.buildErr != nil {
		return "", m.buildErr
	}
	return "unsigned:" + recipient + ":" + lovelace, nil
}

func (m *mockWalletSession) SignTx(_ context.Context, unsignedTx string) (string, error) {
	m.record("signTx")
	if m.signTxErr != nil {
		return "", m.signTxErr
	}
	return "signed:" + unsignedTx, nil
}

func (m *mockWalletSession) SubmitTx(_ context.Context, signedTx string) (string, error) {
	m.record("submitTx")
	if m.submitHook != nil {
		m.submitHook()
	}
	if m.submitErr != nil {
		return "", m.submitErr
	}
	m.lastSubmitted = signedTx
	return m.txID, nil
}

// mockWalletGateway answers discovery and enable from canned values.
type mockWalletGateway struct {
	wallets      []domain.WalletInfo
	discoveryErr error
	enableErr    error
	session      *mockWalletSession
}

func newMockWalletGateway() *mockWalletGateway {
	return &mockWalletGateway{
		wallets: []domain.WalletInfo{
			{Name: "nami", Icon: "icon://nami", Version: "1.0"},
		},
		session: newMockWalletSession(),
	}
}

func (m *mockWalletGateway) GetInstalledWallets(_ context.Context) ([]domain.WalletInfo, error) {
	if m.discoveryErr != nil {
		return nil, m.discoveryErr
	}
	return m.wallets, nil
}

func (m *mockWalletGateway) Enable(_ context.Context, _ string) (ports.WalletSession, error) {
	if m.enableErr != nil {
		return nil, m.enableErr
	}
	if m.session == nil {
		return nil, nil
	}
	return m.session, nil
}

// mockIndexer serves canned pages and details and counts requests.
type mockIndexer struct {
	mtx      sync.Mutex
	requests int

	epoch    int
	epochErr error

	summaries  []indexer.TxSummary
	total      int
	listErr    error
	listHook   func()
	details    map[string]indexer.TxDetail
	inputs     map[string][]string
	inputsErr  error
	detailsErr error

	delegations    []indexer.Delegation
	delegationsErr error
}

func newMockIndexer() *mockIndexer {
	return &mockIndexer{
		epoch:   425,
		details: map[string]indexer.TxDetail{},
		inputs:  map[string][]string{},
	}
}

func (m *mockIndexer) bump() {
	m.mtx.Lock()
	m.requests++
	m.mtx.Unlock()
}

func (m *mockIndexer) LatestEpoch() (int, error) {
	m.bump()
	return m.epoch, m.epochErr
}

func (m *mockIndexer) AddressTransactions(
	_ string, page, count int,
) ([]indexer.TxSummary, int, error) {
	m.bump()
	if m.listHook != nil {
		hook := m.listHook
		m.listHook = nil
		hook()
	}
	if m.listErr != nil {
		return nil, 0, m.listErr
	}

	start := (page - 1) * count
	if start >= len(m.summaries) {
		return []indexer.TxSummary{}, m.total, nil
	}
	end := start + count
	if end > len(m.summaries) {
		end = len(m.summaries)
	}
	return m.summaries[start:end], m.total, nil
}

func (m *mockIndexer) Transaction(hash string) (indexer.TxDetail, error) {
	m.bump()
	if m.detailsErr != nil {
		return indexer.TxDetail{}, m.detailsErr
	}
	return m.details[hash], nil
}

func (m *mockIndexer) TransactionInputs(hash string) ([]string, error) {
	m.bump()
	if m.inputsErr != nil {
		return nil, m.inputsErr
	}
	return m.inputs[hash], nil
}

func (m *mockIndexer) AccountDelegations(_ string) ([]indexer.Delegation, error) {
	m.bump()
	if m.delegationsErr != nil {
		return nil, m.delegationsErr
	}
	return m.delegations, nil
}

// mockDirectory serves a canned pool list and counts fetches.
type mockDirectory struct {
	mtx     sync.Mutex
	fetches int
	pools   []pooldirectory.Pool
	err     error
}

func newMockDirectory() *mockDirectory {
	return &mockDirectory{
		pools: []pooldirectory.Pool{
			{ID: "pool1aaa", Ticker: "POOL1", Name: "First Pool"},
			{ID: "pool1bbb", Ticker: "SNEK", Name: "Serpent"},
			{ID: "pool1ccc", Ticker: "", Name: "Unnamed Pool"},
		},
	}
}

func (m *mockDirectory) FetchPools() ([]pooldirectory.Pool, error) {
	m.mtx.Lock()
	m.fetches++
	m.mtx.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.pools, nil
}

var errProvider = errors.New("provider unreachable")
