package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/stakedash/stakedash-daemon/internal/core/domain"
	"github.com/stakedash/stakedash-daemon/pkg/indexer"
	"github.com/stakedash/stakedash-daemon/pkg/mathutil"
)

// ErrStalePage is returned when a newer page request superseded this one
// while its responses were still in flight. Callers should drop the result.
var ErrStalePage = errors.New("history page request superseded")

// TransactionPage is one window of the wallet's transaction history.
type TransactionPage struct {
	Items     []domain.TransactionItem `json:"items"`
	Total     int                      `json:"total"`
	Page      int                      `json:"page"`
	PageCount int                      `json:"pageCount"`
}

type HistoryService interface {
	// CurrentEpoch returns the network's latest epoch. A provider failure
	// is non-fatal and reported via ok=false.
	CurrentEpoch(ctx context.Context) (epoch int, ok bool)
	// Transactions returns one page of the wallet's transaction history,
	// newest first, with per-item details fetched concurrently within the
	// page. A page past the end yields an empty item set with the true
	// total.
	Transactions(ctx context.Context, pageNumber, pageSize int) (*TransactionPage, error)
	// Delegations returns the delegation events of the wallet's stake
	// account. Failures degrade to an empty list with an advisory error.
	Delegations(ctx context.Context) ([]domain.DelegationRecord, error)
}

type historyService struct {
	sessions SessionService
	indexer  indexer.Service

	// fetchSeq tags every page request so responses resolving after a newer
	// request can be discarded instead of overwriting fresher data.
	fetchSeq uint64
}

func NewHistoryService(sessions SessionService, indexerSvc indexer.Service) HistoryService {
	return &historyService{
		sessions: sessions,
		indexer:  indexerSvc,
	}
}

func (h *historyService) CurrentEpoch(_ context.Context) (int, bool) {
	epoch, err := h.indexer.LatestEpoch()
	if err != nil {
		log.WithError(err).Debug("latest epoch lookup failed")
		return 0, false
	}
	return epoch, true
}

func (h *historyService) Transactions(
	ctx context.Context, pageNumber, pageSize int,
) (*TransactionPage, error) {
	session, err := h.sessions.Current()
	if err != nil {
		return nil, err
	}

	page := domain.NewPage(pageNumber, pageSize)
	seq := atomic.AddUint64(&h.fetchSeq, 1)

	summaries, total, err := h.indexer.AddressTransactions(
		session.Address(), page.Number, page.Size,
	)
	if err != nil {
		statusErr := &indexer.StatusError{}
		if errors.As(err, &statusErr) {
			return nil, fmt.Errorf(
				"%w: status %d", domain.ErrHistoryFetch, statusErr.StatusCode,
			)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrHistoryFetch, err)
	}

	items := make([]domain.TransactionItem, len(summaries))
	group, _ := errgroup.WithContext(ctx)
	for i := range summaries {
		i, summary := i, summaries[i]
		group.Go(func() error {
			detail, err := h.indexer.Transaction(summary.TxHash)
			if err != nil {
				return err
			}
			items[i] = domain.TransactionItem{
				TxHash: summary.TxHash,
				Block:  strconv.Itoa(detail.BlockHeight),
				Time:   time.Unix(detail.BlockTime, 0).UTC(),
				Amount: mathutil.ToAda(detail.OutputAmount),
				Status: h.deriveStatus(summary, session.Addresses),
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrHistoryFetch, err)
	}

	if atomic.LoadUint64(&h.fetchSeq) != seq {
		return nil, ErrStalePage
	}

	return &TransactionPage{
		Items:     items,
		Total:     total,
		Page:      page.Number,
		PageCount: page.Count(total),
	}, nil
}

// deriveStatus resolves the direction of a transaction by matching the
// wallet's own addresses against the transaction inputs. When the inputs
// cannot be fetched it falls back to index parity (index 0 meaning outgoing),
// a heuristic rather than a ledger-verified direction.
func (h *historyService) deriveStatus(
	summary indexer.TxSummary, walletAddresses []string,
) domain.TxStatus {
	inputs, err := h.indexer.TransactionInputs(summary.TxHash)
	if err == nil {
		owned := make(map[string]struct{}, len(walletAddresses))
		for _, addr := range walletAddresses {
			owned[addr] = struct{}{}
		}
		for _, input := range inputs {
			if _, ok := owned[input]; ok {
				return domain.TxOutgoing
			}
		}
		return domain.TxIncoming
	}

	if summary.TxIndex == 0 {
		return domain.TxOutgoing
	}
	return domain.TxIncoming
}

func (h *historyService) Delegations(ctx context.Context) ([]domain.DelegationRecord, error) {
	session, err := h.sessions.Current()
	if err != nil {
		return nil, err
	}
	if session.RewardAddress == "" {
		log.Debug("wallet reported no stake address, skipping delegations")
		return []domain.DelegationRecord{}, nil
	}

	currentEpoch, epochKnown := h.CurrentEpoch(ctx)

	delegations, err := h.indexer.AccountDelegations(session.RewardAddress)
	if err != nil {
		log.WithError(err).Warn("delegation history lookup failed")
		return []domain.DelegationRecord{}, fmt.Errorf("%w: %v", domain.ErrHistoryFetch, err)
	}

	records := make([]domain.DelegationRecord, 0, len(delegations))
	for _, delegation := range delegations {
		epoch := strconv.Itoa(delegation.ActiveEpoch)
		if epochKnown {
			epoch = fmt.Sprintf("%d / %d", delegation.ActiveEpoch, currentEpoch)
		}

		block := "N/A"
		if delegation.BlockHeight > 0 {
			block = strconv.Itoa(delegation.BlockHeight)
		}

		records = append(records, domain.DelegationRecord{
			Transaction: delegation.TxHash,
			Epoch:       epoch,
			Block:       block,
			PoolID:      delegation.PoolID,
		})
	}

	return records, nil
}
