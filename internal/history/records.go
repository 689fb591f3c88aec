package history

import (
	"math/big"
	"time"

	"github.com/walletkit-dev/walletkit/internal/tokens"
)

// Direction selects which side of a transfer the queried account is on.
type Direction string

const (
	// Inbound filters logs where the account is the transfer recipient.
	Inbound Direction = "inbound"
	// Outbound filters logs where the account is the transfer sender.
	Outbound Direction = "outbound"
)

// RecordKey identifies a transfer record. A single transaction can emit
// several Transfer events, so the transaction hash alone is not unique;
// the log index disambiguates.
type RecordKey struct {
	Hash     string
	LogIndex uint64
}

// TransferRecord is a normalized token transfer reconstructed from an
// event log. Gas fields stay nil until a later transaction fetch fills
// them in; Timestamp holds the wall-clock parse time until the true
// block timestamp is known, which keeps fresh entries sorted to "now".
type TransferRecord struct {
	Hash          string       `json:"hash"`
	LogIndex      uint64       `json:"log_index"`
	BlockNumber   *big.Int     `json:"block_number"`
	Symbol        string       `json:"symbol"`
	From          string       `json:"from"`
	To            string       `json:"to"`
	Value         *big.Int     `json:"value"`
	Type          Direction    `json:"type"`
	Confirmations *big.Int     `json:"confirmations"`
	Timestamp     time.Time    `json:"timestamp"`
	Token         tokens.Token `json:"token"`
	Transfer      bool         `json:"transfer"`

	GasPrice *big.Int `json:"gas_price"`
	GasLimit *big.Int `json:"gas_limit"`
	GasUsed  *big.Int `json:"gas_used"`
	Nonce    *big.Int `json:"nonce"`
}

// ByHash collapses records into the transaction-hash-keyed view the
// wallet UI consumes. When one transaction emitted several transfers the
// entry with the highest log index wins.
func ByHash(records map[RecordKey]TransferRecord) map[string]TransferRecord {
	out := make(map[string]TransferRecord, len(records))
	for key, record := range records {
		if existing, ok := out[key.Hash]; ok && existing.LogIndex > key.LogIndex {
			continue
		}
		out[key.Hash] = record
	}
	return out
}
