package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakedash/stakedash-daemon/internal/core/domain"
	"github.com/stakedash/stakedash-daemon/pkg/indexer"
)

func newHistoryFixture(t *testing.T) (HistoryService, *mockIndexer, *mockWalletGateway) {
	t.Helper()

	gateway := newMockWalletGateway()
	sessions := NewSessionService(gateway, 0)
	_, err := sessions.Connect(context.Background(), "nami")
	require.NoError(t, err)

	indexerMock := newMockIndexer()
	return NewHistoryService(sessions, indexerMock), indexerMock, gateway
}

func seedTransactions(m *mockIndexer, n int) {
	for i := 0; i < n; i++ {
		hash := fmt.Sprintf("tx%02d", i)
		m.summaries = append(m.summaries, indexer.TxSummary{
			TxHash: hash, TxIndex: i % 2, BlockHeight: 1000 - i,
		})
		m.details[hash] = indexer.TxDetail{
			Hash:         hash,
			BlockHeight:  1000 - i,
			BlockTime:    1680000000 - int64(i),
			OutputAmount: "1000000",
		}
	}
	m.total = n
}

func TestCurrentEpoch(t *testing.T) {
	service, indexerMock, _ := newHistoryFixture(t)

	epoch, ok := service.CurrentEpoch(context.Background())
	assert.True(t, ok)
	assert.Equal(t, 425, epoch)

	indexerMock.epochErr = errProvider
	_, ok = service.CurrentEpoch(context.Background())
	assert.False(t, ok)
}

func TestTransactions(t *testing.T) {
	t.Run("should page and enrich the listing", func(t *testing.T) {
		service, indexerMock, _ := newHistoryFixture(t)
		seedTransactions(indexerMock, 23)

		page, err := service.Transactions(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 23, page.Total)
		assert.Equal(t, 3, page.PageCount)
		require.Len(t, page.Items, 10)
		assert.Equal(t, "tx00", page.Items[0].TxHash)
		assert.Equal(t, "1000", page.Items[0].Block)
		assert.Equal(t, "1.000000", page.Items[0].Amount)
	})

	t.Run("should return the trailing page and an empty one past the end", func(t *testing.T) {
		service, indexerMock, _ := newHistoryFixture(t)
		seedTransactions(indexerMock, 23)

		page, err := service.Transactions(context.Background(), 3, 10)
		require.NoError(t, err)
		assert.Len(t, page.Items, 3)
		assert.Equal(t, 23, page.Total)

		page, err = service.Transactions(context.Background(), 4, 10)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 23, page.Total)
		assert.Equal(t, 3, page.PageCount)
	})

	t.Run("should yield an empty result for an address with no history", func(t *testing.T) {
		service, _, _ := newHistoryFixture(t)

		page, err := service.Transactions(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.Total)
		assert.Equal(t, 1, page.PageCount)
	})

	t.Run("should wrap listing failures with the provider status", func(t *testing.T) {
		service, indexerMock, _ := newHistoryFixture(t)
		indexerMock.listErr = &indexer.StatusError{StatusCode: 429, Body: "slow down"}

		_, err := service.Transactions(context.Background(), 1, 10)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrHistoryFetch)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("should derive direction from the wallet's own inputs", func(t *testing.T) {
		service, indexerMock, _ := newHistoryFixture(t)
		seedTransactions(indexerMock, 2)
		indexerMock.inputs["tx00"] = []string{"addr1main"}
		indexerMock.inputs["tx01"] = []string{"addr1other"}

		page, err := service.Transactions(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, domain.TxOutgoing, page.Items[0].Status)
		assert.Equal(t, domain.TxIncoming, page.Items[1].Status)
	})

	t.Run("should discard a page superseded by a newer request", func(t *testing.T) {
		service, indexerMock, _ := newHistoryFixture(t)
		seedTransactions(indexerMock, 5)

		indexerMock.listHook = func() {
			// A newer page request lands while this one is in flight.
			_, err := service.Transactions(context.Background(), 2, 10)
			require.NoError(t, err)
		}

		_, err := service.Transactions(context.Background(), 1, 10)
		assert.ErrorIs(t, err, ErrStalePage)
	})

	t.Run("should fall back to index parity when inputs are unavailable", func(t *testing.T) {
		service, indexerMock, _ := newHistoryFixture(t)
		seedTransactions(indexerMock, 2)
		indexerMock.inputsErr = errProvider

		page, err := service.Transactions(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, domain.TxOutgoing, page.Items[0].Status)
		assert.Equal(t, domain.TxIncoming, page.Items[1].Status)
	})
}

func TestDelegations(t *testing.T) {
	t.Run("should normalize delegation events", func(t *testing.T) {
		service, indexerMock, _ := newHistoryFixture(t)
		indexerMock.delegations = []indexer.Delegation{
			{TxHash: "dd44", ActiveEpoch: 210, PoolID: "pool1aaa"},
			{TxHash: "ee55", ActiveEpoch: 300, BlockHeight: 777, PoolID: "pool1bbb"},
		}

		records, err := service.Delegations(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "210 / 425", records[0].Epoch)
		assert.Equal(t, "N/A", records[0].Block)
		assert.Equal(t, "777", records[1].Block)
	})

	t.Run("should omit the current epoch when it is unknown", func(t *testing.T) {
		service, indexerMock, _ := newHistoryFixture(t)
		indexerMock.epochErr = errProvider
		indexerMock.delegations = []indexer.Delegation{
			{TxHash: "dd44", ActiveEpoch: 210, PoolID: "pool1aaa"},
		}

		records, err := service.Delegations(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "210", records[0].Epoch)
	})

	t.Run("should degrade to an empty list with an advisory error", func(t *testing.T) {
		service, indexerMock, _ := newHistoryFixture(t)
		indexerMock.delegationsErr = errProvider

		records, err := service.Delegations(context.Background())
		assert.ErrorIs(t, err, domain.ErrHistoryFetch)
		assert.Empty(t, records)
		assert.NotNil(t, records)
	})

	t.Run("should skip the lookup when the wallet has no stake address", func(t *testing.T) {
		gateway := newMockWalletGateway()
		gateway.session.rewardAddress = ""
		sessions := NewSessionService(gateway, 0)
		_, err := sessions.Connect(context.Background(), "nami")
		require.NoError(t, err)

		indexerMock := newMockIndexer()
		service := NewHistoryService(sessions, indexerMock)

		records, err := service.Delegations(context.Background())
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Equal(t, 0, indexerMock.requests)
	})
}
