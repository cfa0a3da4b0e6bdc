package blockfrost

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stakedash/stakedash-daemon/pkg/indexer"
)

type epochResponse struct {
	Epoch int `json:"epoch"`
}

func (b *blockfrost) LatestEpoch() (int, error) {
	url := fmt.Sprintf("%s/epochs/latest", b.apiURL)
	status, resp, _, err := b.request("GET", url)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return 0, &indexer.StatusError{StatusCode: status, Body: resp}
	}

	out := epochResponse{}
	if err := json.Unmarshal([]byte(resp), &out); err != nil {
		return 0, err
	}

	return out.Epoch, nil
}
