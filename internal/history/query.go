package history

import (
	"encoding/json"
	"fmt"

	"github.com/walletkit-dev/walletkit/internal/common"
	"github.com/walletkit-dev/walletkit/internal/erc20"
)

// logsRequest is the wire shape of the raw eth_getLogs submission.
type logsRequest struct {
	JsonRpc string       `json:"jsonrpc"`
	ID      int          `json:"id"`
	Method  string       `json:"method"`
	Params  []logsFilter `json:"params"`
}

type logsFilter struct {
	Address   []string  `json:"address"`
	FromBlock string    `json:"fromBlock"`
	Topics    []*string `json:"topics"`
}

// BuildTransferLogsQuery serializes a JSON-RPC request for every Transfer
// log since genesis across the given token contracts. Exactly one of the
// two address topics is constrained: the recipient slot for Inbound, the
// sender slot for Outbound. The other is null and matches anything.
func BuildTransferLogsQuery(contracts []string, direction Direction, account string) ([]byte, error) {
	padded, err := common.PadTopicAddress(account)
	if err != nil {
		return nil, err
	}

	eventHash := erc20.TransferEventHash
	topics := []*string{&eventHash, nil, nil}
	switch direction {
	case Inbound:
		topics[2] = &padded
	case Outbound:
		topics[1] = &padded
	default:
		return nil, fmt.Errorf("unknown transfer direction %q", direction)
	}

	normalized := make([]string, len(contracts))
	for i, contract := range contracts {
		normalized[i] = common.NormalizeAddress(contract)
	}

	return json.Marshal(logsRequest{
		JsonRpc: "2.0",
		ID:      2,
		Method:  "eth_getLogs",
		Params: []logsFilter{{
			Address:   normalized,
			FromBlock: "0x0",
			Topics:    topics,
		}},
	})
}
