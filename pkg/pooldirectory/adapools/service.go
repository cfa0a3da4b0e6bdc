package adapools

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stakedash/stakedash-daemon/pkg/httputil"
	"github.com/stakedash/stakedash-daemon/pkg/pooldirectory"
	"github.com/stakedash/stakedash-daemon/pkg/stats"
)

const (
	requestsPerSecond = 2
	// maxPools caps the number of directory entries kept from a bulk fetch.
	maxPools = 1000
	// defaultPoolName is the display name used when the directory reports none.
	defaultPoolName = "Unnamed Pool"
)

type adapools struct {
	apiURL string
	client *httputil.Client
}

// NewService returns a new adapools service as a pooldirectory.Service
// interface.
func NewService(apiURL string) pooldirectory.Service {
	return &adapools{
		apiURL: apiURL,
		client: httputil.NewClient(requestsPerSecond),
	}
}

type poolJSON struct {
	PoolID string `json:"pool_id"`
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
}

type listResponse struct {
	Data []poolJSON `json:"data"`
}

func (a *adapools) FetchPools() ([]pooldirectory.Pool, error) {
	url := fmt.Sprintf("%s/list", a.apiURL)
	status, resp, err := a.client.NewHTTPRequest("GET", url, "", nil)
	stats.CountRequest("adapools", err)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("pool directory: status %d: %s", status, resp)
	}

	out := listResponse{}
	if err := json.Unmarshal([]byte(resp), &out); err != nil {
		return nil, err
	}

	entries := out.Data
	if len(entries) > maxPools {
		entries = entries[:maxPools]
	}

	pools := make([]pooldirectory.Pool, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name
		if name == "" {
			name = defaultPoolName
		}
		pools = append(pools, pooldirectory.Pool{
			ID:     entry.PoolID,
			Ticker: entry.Ticker,
			Name:   name,
		})
	}

	return pools, nil
}
