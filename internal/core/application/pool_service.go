package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/stakedash/stakedash-daemon/internal/core/domain"
	"github.com/stakedash/stakedash-daemon/pkg/pooldirectory"
)

type PoolService interface {
	// Pools returns the directory's pools, fetched once and cached for the
	// session. The returned set is read-only.
	Pools(ctx context.Context) ([]domain.StakePool, error)
	// Filter returns the cached pools whose name or ticker contains query,
	// case-insensitively. An empty query returns all pools unchanged.
	Filter(ctx context.Context, query string) ([]domain.StakePool, error)
	// ByID returns the cached pool with the given id, or
	// domain.ErrPoolNotInDirectory.
	ByID(ctx context.Context, id string) (domain.StakePool, error)
	// Reset drops the cached set so the next call fetches again.
	Reset()
}

type poolService struct {
	directory pooldirectory.Service

	mtx    sync.Mutex
	cached []domain.StakePool
}

func NewPoolService(directory pooldirectory.Service) PoolService {
	return &poolService{directory: directory}
}

func (p *poolService) Pools(_ context.Context) ([]domain.StakePool, error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.cached != nil {
		return p.cached, nil
	}

	fetched, err := p.directory.FetchPools()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPoolFetch, err)
	}

	pools := make([]domain.StakePool, 0, len(fetched))
	for _, pool := range fetched {
		pools = append(pools, domain.StakePool{
			ID:     pool.ID,
			Ticker: pool.Ticker,
			Name:   pool.Name,
		})
	}
	p.cached = pools

	log.WithField("pools", len(pools)).Debug("stake-pool directory cached")

	return p.cached, nil
}

func (p *poolService) Filter(ctx context.Context, query string) ([]domain.StakePool, error) {
	pools, err := p.Pools(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return pools, nil
	}

	filtered := make([]domain.StakePool, 0)
	for _, pool := range pools {
		if strings.Contains(strings.ToLower(pool.Name), q) ||
			strings.Contains(strings.ToLower(pool.Ticker), q) {
			filtered = append(filtered, pool)
		}
	}

	return filtered, nil
}

func (p *poolService) ByID(ctx context.Context, id string) (domain.StakePool, error) {
	pools, err := p.Pools(ctx)
	if err != nil {
		return domain.StakePool{}, err
	}

	for _, pool := range pools {
		if pool.ID == id {
			return pool, nil
		}
	}

	return domain.StakePool{}, domain.ErrPoolNotInDirectory
}

func (p *poolService) Reset() {
	p.mtx.Lock()
	p.cached = nil
	p.mtx.Unlock()
}
