package blockfrost

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/stakedash/stakedash-daemon/pkg/indexer"
)

// totalCountHeader is the response header carrying the total number of
// entries of a paginated listing.
const totalCountHeader = "X-Total-Count"

type txSummaryJSON struct {
	TxHash      string `json:"tx_hash"`
	TxIndex     int    `json:"tx_index"`
	BlockHeight int    `json:"block_height"`
}

type txDetailJSON struct {
	Hash         string `json:"hash"`
	BlockHeight  int    `json:"block_height"`
	BlockTime    int64  `json:"block_time"`
	OutputAmount []struct {
		Unit     string `json:"unit"`
		Quantity string `json:"quantity"`
	} `json:"output_amount"`
}

type txUtxosJSON struct {
	Inputs []struct {
		Address string `json:"address"`
	} `json:"inputs"`
}

func (b *blockfrost) AddressTransactions(
	address string, page, count int,
) ([]indexer.TxSummary, int, error) {
	url := fmt.Sprintf(
		"%s/addresses/%s/transactions?page=%d&count=%d&order=desc",
		b.apiURL, address, page, count,
	)
	status, resp, header, err := b.request("GET", url)
	if err != nil {
		return nil, 0, err
	}
	if status == http.StatusNotFound {
		// An address the chain has never seen: empty history, not an error.
		return []indexer.TxSummary{}, 0, nil
	}
	if status != http.StatusOK {
		return nil, 0, &indexer.StatusError{StatusCode: status, Body: resp}
	}

	list := []txSummaryJSON{}
	if err := json.Unmarshal([]byte(resp), &list); err != nil {
		return nil, 0, err
	}

	summaries := make([]indexer.TxSummary, 0, len(list))
	for _, entry := range list {
		summaries = append(summaries, indexer.TxSummary{
			TxHash:      entry.TxHash,
			TxIndex:     entry.TxIndex,
			BlockHeight: entry.BlockHeight,
		})
	}

	total := len(summaries)
	if raw := header.Get(totalCountHeader); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			total = parsed
		}
	}

	return summaries, total, nil
}

func (b *blockfrost) Transaction(hash string) (indexer.TxDetail, error) {
	url := fmt.Sprintf("%s/txs/%s", b.apiURL, hash)
	status, resp, _, err := b.request("GET", url)
	if err != nil {
		return indexer.TxDetail{}, err
	}
	if status != http.StatusOK {
		return indexer.TxDetail{}, &indexer.StatusError{StatusCode: status, Body: resp}
	}

	detail := txDetailJSON{}
	if err := json.Unmarshal([]byte(resp), &detail); err != nil {
		return indexer.TxDetail{}, err
	}

	amount := "0"
	if len(detail.OutputAmount) > 0 {
		amount = detail.OutputAmount[0].Quantity
	}

	return indexer.TxDetail{
		Hash:         detail.Hash,
		BlockHeight:  detail.BlockHeight,
		BlockTime:    detail.BlockTime,
		OutputAmount: amount,
	}, nil
}

func (b *blockfrost) TransactionInputs(hash string) ([]string, error) {
	url := fmt.Sprintf("%s/txs/%s/utxos", b.apiURL, hash)
	status, resp, _, err := b.request("GET", url)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &indexer.StatusError{StatusCode: status, Body: resp}
	}

	utxos := txUtxosJSON{}
	if err := json.Unmarshal([]byte(resp), &utxos); err != nil {
		return nil, err
	}

	addresses := make([]string, 0, len(utxos.Inputs))
	for _, input := range utxos.Inputs {
		addresses = append(addresses, input.Address)
	}

	return addresses, nil
}
