package blockfrost

import (
	"fmt"
	"net/http"

	"github.com/sony/gobreaker"
	"github.com/stakedash/stakedash-daemon/pkg/circuitbreaker"
	"github.com/stakedash/stakedash-daemon/pkg/httputil"
	"github.com/stakedash/stakedash-daemon/pkg/indexer"
	"github.com/stakedash/stakedash-daemon/pkg/stats"
)

const requestsPerSecond = 10

type blockfrost struct {
	apiURL    string
	projectID string
	client    *httputil.Client
	cb        *gobreaker.CircuitBreaker
}

// NewService returns a new blockfrost service as an indexer.Service interface.
func NewService(apiURL, projectID string) (indexer.Service, error) {
	service := &blockfrost{
		apiURL:    apiURL,
		projectID: projectID,
		client:    httputil.NewClient(requestsPerSecond),
		cb:        circuitbreaker.NewCircuitBreaker("blockfrost"),
	}

	if err := service.healthCheck(); err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}

	return service, nil
}

func (b *blockfrost) healthCheck() error {
	status, resp, _, err := b.request("GET", fmt.Sprintf("%s/health", b.apiURL))
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf(resp)
	}
	return nil
}

type requestResult struct {
	status int
	body   string
	header http.Header
}

// request funnels every call through the circuit breaker so that a flapping
// provider stops being hammered. Non-2xx statuses are not breaker failures,
// only transport errors are.
func (b *blockfrost) request(method, url string) (int, string, http.Header, error) {
	headers := map[string]string{
		"project_id": b.projectID,
	}

	iresult, err := b.cb.Execute(func() (interface{}, error) {
		status, body, header, err := b.client.NewHTTPRequestWithHeader(
			method, url, "", headers,
		)
		if err != nil {
			return nil, err
		}
		return requestResult{status, body, header}, nil
	})
	stats.CountRequest("blockfrost", err)
	if err != nil {
		return 0, "", nil, err
	}

	result := iresult.(requestResult)
	return result.status, result.body, result.header, nil
}
