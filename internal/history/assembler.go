package history

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/walletkit-dev/walletkit/internal/common"
	"github.com/walletkit-dev/walletkit/internal/metrics"
	"github.com/walletkit-dev/walletkit/internal/rpc"
	"github.com/walletkit-dev/walletkit/internal/tokens"
)

// Assembler reconstructs an account's token transfer history from
// Transfer event logs. Every invocation is independent: the head block is
// resolved first, then the log query runs against it, so confirmation
// counts are consistent within one result set.
type Assembler struct {
	provider  rpc.Provider
	transport rpc.Transport
	registry  *tokens.Registry
}

func NewAssembler(provider rpc.Provider, transport rpc.Transport, registry *tokens.Registry) *Assembler {
	return &Assembler{
		provider:  provider,
		transport: transport,
		registry:  registry,
	}
}

// TransferHistory answers which ERC-20 transfers, in the given direction,
// the account has been involved in since genesis across every token the
// registry knows for the chain.
func (a *Assembler) TransferHistory(ctx context.Context, chainID uint64, account string, direction Direction) (map[RecordKey]TransferRecord, error) {
	headBlock, err := a.provider.BlockNumber(ctx)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	contracts := a.registry.Addresses(chainID)
	query, err := BuildTransferLogsQuery(contracts, direction, account)
	if err != nil {
		return nil, err
	}

	metrics.LogQueries.Inc()
	raw, err := a.transport.Post(ctx, query)
	if err != nil {
		metrics.LogQueryErrors.Inc()
		return nil, &ProviderError{Err: err}
	}

	entries, err := decodeLogsResponse(raw)
	if err != nil {
		metrics.LogQueryErrors.Inc()
		return nil, err
	}

	records := make(map[RecordKey]TransferRecord, len(entries))
	for _, entry := range entries {
		record, err := a.parseEntry(chainID, entry, headBlock, direction)
		if err != nil {
			metrics.SkippedLogEntries.Inc()
			log.Debug().Err(err).Str("tx", entry.TransactionHash).Msg("skipping transfer log entry")
			continue
		}
		metrics.ParsedTransfers.Inc()
		records[RecordKey{Hash: record.Hash, LogIndex: record.LogIndex}] = record
	}
	return records, nil
}

func (a *Assembler) parseEntry(chainID uint64, entry logEntry, headBlock *big.Int, direction Direction) (TransferRecord, error) {
	token, ok := a.registry.ByAddress(chainID, entry.Address)
	if !ok {
		return TransferRecord{}, fmt.Errorf("contract %s not in token registry", entry.Address)
	}
	if len(entry.Topics) < 2 {
		return TransferRecord{}, fmt.Errorf("transfer log %s has %d topics", entry.TransactionHash, len(entry.Topics))
	}

	from, err := common.UnpadTopicAddress(entry.Topics[1])
	if err != nil {
		return TransferRecord{}, fmt.Errorf("bad from topic: %v", err)
	}
	to, err := common.UnpadTopicAddress(entry.Topics[len(entry.Topics)-1])
	if err != nil {
		return TransferRecord{}, fmt.Errorf("bad to topic: %v", err)
	}

	value, err := common.HexToBig(entry.Data)
	if err != nil {
		return TransferRecord{}, fmt.Errorf("bad value data: %v", err)
	}
	blockNumber, err := common.HexToBig(entry.BlockNumber)
	if err != nil {
		return TransferRecord{}, fmt.Errorf("bad block number: %v", err)
	}

	// logIndex is absent on some endpoints; zero is a usable fallback
	var logIndex uint64
	if entry.LogIndex != "" {
		logIndex, err = common.HexToUint64(entry.LogIndex)
		if err != nil {
			return TransferRecord{}, fmt.Errorf("bad log index: %v", err)
		}
	}

	return TransferRecord{
		Hash:          entry.TransactionHash,
		LogIndex:      logIndex,
		BlockNumber:   blockNumber,
		Symbol:        token.Symbol,
		From:          from,
		To:            to,
		Value:         value,
		Type:          direction,
		Confirmations: new(big.Int).Sub(headBlock, blockNumber),
		Timestamp:     time.Now(),
		Token:         token,
		Transfer:      true,
	}, nil
}
