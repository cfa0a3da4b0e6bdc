package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/stakedash/stakedash-daemon/internal/core/domain"
	"github.com/stakedash/stakedash-daemon/pkg/mathutil"
)

// SubmissionState is one step of the staking submission workflow.
type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateValidating SubmissionState = "validating"
	StateAttesting  SubmissionState = "attesting"
	StateBuilding   SubmissionState = "building"
	StateSigning    SubmissionState = "signing"
	StateSubmitting SubmissionState = "submitting"
	StateSucceeded  SubmissionState = "succeeded"
	StateFailed     SubmissionState = "failed"
)

// SubmissionResult is the outcome of a successful staking submission.
type SubmissionResult struct {
	ID        string           `json:"id"`
	TxID      string           `json:"txId"`
	Pool      domain.StakePool `json:"pool"`
	AmountAda string           `json:"amount"`
}

type StakeService interface {
	// Stake runs the submission workflow for the selected pool and amount:
	// validate, attest, build, sign, submit. Exactly one submission may be
	// in flight; overlapping calls fail with domain.ErrSubmissionInFlight.
	// Failures are never retried.
	Stake(ctx context.Context, poolID, amount string) (*SubmissionResult, error)
	// State returns the state of the submission workflow.
	State() SubmissionState
}

type stakeService struct {
	sessions    SessionService
	pools       PoolService
	destination string
	minStake    decimal.Decimal

	mtx   sync.Mutex
	busy  bool
	state SubmissionState
}

// NewStakeService returns a StakeService sending funds to the fixed
// destination address. The destination is constant regardless of the selected
// pool.
func NewStakeService(
	sessions SessionService, pools PoolService,
	destination string, minStakeAda int,
) StakeService {
	return &stakeService{
		sessions:    sessions,
		pools:       pools,
		destination: destination,
		minStake:    decimal.NewFromInt(int64(minStakeAda)),
		state:       StateIdle,
	}
}

func (s *stakeService) State() SubmissionState {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.state
}

func (s *stakeService) setState(state SubmissionState) {
	s.mtx.Lock()
	s.state = state
	s.mtx.Unlock()
}

func (s *stakeService) Stake(
	ctx context.Context, poolID, amount string,
) (result *SubmissionResult, err error) {
	s.mtx.Lock()
	if s.busy {
		s.mtx.Unlock()
		return nil, domain.ErrSubmissionInFlight
	}
	s.busy = true
	s.state = StateValidating
	s.mtx.Unlock()

	defer func() {
		s.mtx.Lock()
		s.busy = false
		if err != nil {
			s.state = StateFailed
		} else {
			s.state = StateSucceeded
		}
		s.mtx.Unlock()
	}()

	session, err := s.sessions.Current()
	if err != nil {
		return nil, err
	}

	// Amount validation comes before the pool lookup: a rejected amount must
	// not trigger any network call, and the first ByID may fetch the
	// directory.
	if err = validateStakeAmount(amount, s.minStake); err != nil {
		return nil, err
	}

	pool, err := s.pools.ByID(ctx, poolID)
	if err != nil {
		return nil, err
	}

	// The attestation binds an explicit user confirmation to the pool
	// choice before any funds move. It has no on-chain effect.
	s.setState(StateAttesting)
	if _, err = session.Handle().SignData(ctx, pool.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAttestationFailed, err)
	}

	s.setState(StateBuilding)
	lovelace := mathutil.ToLovelace(amount)
	unsignedTx, err := session.Handle().BuildTx(ctx, s.destination, lovelace)
	if err != nil {
		return nil, fmt.Errorf("%w: build: %v", domain.ErrSubmissionFailed, err)
	}

	s.setState(StateSigning)
	signedTx, err := session.Handle().SignTx(ctx, unsignedTx)
	if err != nil {
		return nil, fmt.Errorf("%w: sign: %v", domain.ErrSubmissionFailed, err)
	}

	s.setState(StateSubmitting)
	txID, err := session.Handle().SubmitTx(ctx, signedTx)
	if err != nil {
		return nil, fmt.Errorf("%w: submit: %v", domain.ErrSubmissionFailed, err)
	}

	log.WithFields(log.Fields{
		"pool": pool.ID,
		"txid": txID,
	}).Info("stake transaction submitted")

	return &SubmissionResult{
		ID:        uuid.NewString(),
		TxID:      txID,
		Pool:      pool,
		AmountAda: mathutil.ToAda(lovelace),
	}, nil
}
