package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/walletkit-dev/walletkit/internal/common"
	"github.com/walletkit-dev/walletkit/internal/erc20"
	"github.com/walletkit-dev/walletkit/internal/metrics"
)

// TokenMetadata is the on-chain ERC-20 descriptor of a contract.
type TokenMetadata struct {
	Address     string   `json:"address"`
	Name        string   `json:"name"`
	Symbol      string   `json:"symbol"`
	Decimals    uint8    `json:"decimals"`
	TotalSupply *big.Int `json:"total_supply"`
}

// TokenDataError reports a contract whose call results do not decode as
// ERC-20 metadata, which covers nonexistent contracts as well: their
// calls return empty data.
type TokenDataError struct {
	Contract string
	Err      error
}

func (e *TokenDataError) Error() string {
	return fmt.Sprintf("contract %s did not return ERC-20 metadata: %v", e.Contract, e.Err)
}

func (e *TokenDataError) Unwrap() error {
	return e.Err
}

// Service reads token metadata from the chain, with an optional Redis
// cache in front. The cache is soft state; losing it only costs extra
// contract calls.
type Service struct {
	erc20 *erc20.Client
	cache *redis.Client
	ttl   time.Duration
}

func NewService(client *erc20.Client, cache *redis.Client, ttl time.Duration) *Service {
	return &Service{erc20: client, cache: cache, ttl: ttl}
}

func cacheKey(contract string) string {
	return "walletkit:metadata:" + contract
}

// Lookup resolves the name, symbol, decimals and total supply of a token
// contract.
func (s *Service) Lookup(ctx context.Context, contract string) (TokenMetadata, error) {
	contract = common.NormalizeAddress(contract)

	if cached, ok := s.fromCache(ctx, contract); ok {
		metrics.MetadataCacheHits.Inc()
		return cached, nil
	}
	metrics.MetadataCacheMisses.Inc()

	meta, err := s.fromChain(ctx, contract)
	if err != nil {
		return TokenMetadata{}, err
	}
	s.store(ctx, meta)
	return meta, nil
}

func (s *Service) fromChain(ctx context.Context, contract string) (TokenMetadata, error) {
	nameHex, err := s.erc20.Name(ctx, contract)
	if err != nil {
		return TokenMetadata{}, fmt.Errorf("name() failed for %s: %v", contract, err)
	}
	name, err := erc20.DecodeStringResult(nameHex)
	if err != nil {
		return TokenMetadata{}, &TokenDataError{Contract: contract, Err: err}
	}

	symbolHex, err := s.erc20.Symbol(ctx, contract)
	if err != nil {
		return TokenMetadata{}, fmt.Errorf("symbol() failed for %s: %v", contract, err)
	}
	symbol, err := erc20.DecodeStringResult(symbolHex)
	if err != nil {
		return TokenMetadata{}, &TokenDataError{Contract: contract, Err: err}
	}

	decimalsHex, err := s.erc20.Decimals(ctx, contract)
	if err != nil {
		return TokenMetadata{}, fmt.Errorf("decimals() failed for %s: %v", contract, err)
	}
	decimals, err := erc20.DecodeUint256(decimalsHex)
	if err != nil {
		return TokenMetadata{}, &TokenDataError{Contract: contract, Err: err}
	}
	if !decimals.IsUint64() || decimals.Uint64() > 255 {
		return TokenMetadata{}, &TokenDataError{Contract: contract, Err: fmt.Errorf("decimals %v out of range", decimals)}
	}

	totalSupply, err := s.erc20.TotalSupply(ctx, contract)
	if err != nil {
		return TokenMetadata{}, fmt.Errorf("totalSupply() failed for %s: %v", contract, err)
	}

	return TokenMetadata{
		Address:     contract,
		Name:        name,
		Symbol:      symbol,
		Decimals:    uint8(decimals.Uint64()),
		TotalSupply: totalSupply,
	}, nil
}

func (s *Service) fromCache(ctx context.Context, contract string) (TokenMetadata, bool) {
	if s.cache == nil {
		return TokenMetadata{}, false
	}
	data, err := s.cache.Get(ctx, cacheKey(contract)).Bytes()
	if err != nil {
		return TokenMetadata{}, false
	}
	var meta TokenMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return TokenMetadata{}, false
	}
	return meta, true
}

func (s *Service) store(ctx context.Context, meta TokenMetadata) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(meta.Address), data, s.ttl).Err(); err != nil {
		log.Debug().Err(err).Str("contract", meta.Address).Msg("failed to cache token metadata")
	}
}
