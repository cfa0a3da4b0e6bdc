package blockfrost

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stakedash/stakedash-daemon/pkg/indexer"
)

type delegationJSON struct {
	TxHash      string `json:"tx_hash"`
	ActiveEpoch int    `json:"active_epoch"`
	BlockHeight int    `json:"block_height"`
	PoolID      string `json:"pool_id"`
}

func (b *blockfrost) AccountDelegations(stakeAddress string) ([]indexer.Delegation, error) {
	url := fmt.Sprintf("%s/accounts/%s/delegations", b.apiURL, stakeAddress)
	status, resp, _, err := b.request("GET", url)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return []indexer.Delegation{}, nil
	}
	if status != http.StatusOK {
		return nil, &indexer.StatusError{StatusCode: status, Body: resp}
	}

	list := []delegationJSON{}
	if err := json.Unmarshal([]byte(resp), &list); err != nil {
		return nil, err
	}

	delegations := make([]indexer.Delegation, 0, len(list))
	for _, entry := range list {
		delegations = append(delegations, indexer.Delegation{
			TxHash:      entry.TxHash,
			ActiveEpoch: entry.ActiveEpoch,
			BlockHeight: entry.BlockHeight,
			PoolID:      entry.PoolID,
		})
	}

	return delegations, nil
}
