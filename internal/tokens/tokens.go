package tokens

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/walletkit-dev/walletkit/internal/common"
)

// Token describes an ERC-20 contract the wallet knows about.
type Token struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals uint8  `json:"decimals"`
	ChainID  uint64 `json:"chain_id"`
}

// Registry resolves tokens by contract address or symbol for a chain.
// It is immutable after construction and safe for concurrent use.
type Registry struct {
	byAddress map[uint64]map[string]Token
	bySymbol  map[uint64]map[string]Token
}

func NewRegistry(tokens []Token) *Registry {
	r := &Registry{
		byAddress: make(map[uint64]map[string]Token),
		bySymbol:  make(map[uint64]map[string]Token),
	}
	for _, t := range tokens {
		t.Address = common.NormalizeAddress(t.Address)
		if r.byAddress[t.ChainID] == nil {
			r.byAddress[t.ChainID] = make(map[string]Token)
			r.bySymbol[t.ChainID] = make(map[string]Token)
		}
		r.byAddress[t.ChainID][t.Address] = t
		r.bySymbol[t.ChainID][t.Symbol] = t
	}
	return r
}

// NewDefaultRegistry builds a registry from the built-in token list,
// optionally merged with a JSON token list file.
func NewDefaultRegistry(tokenFile string) (*Registry, error) {
	list := make([]Token, 0, len(builtinTokens))
	list = append(list, builtinTokens...)
	if tokenFile != "" {
		extra, err := loadTokenFile(tokenFile)
		if err != nil {
			return nil, err
		}
		list = append(list, extra...)
	}
	return NewRegistry(list), nil
}

func loadTokenFile(path string) ([]Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token list %s: %v", path, err)
	}
	var list []Token
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse token list %s: %v", path, err)
	}
	return list, nil
}

// ByAddress looks up a token by its contract address.
func (r *Registry) ByAddress(chainID uint64, address string) (Token, bool) {
	t, ok := r.byAddress[chainID][common.NormalizeAddress(address)]
	return t, ok
}

// BySymbol looks up a token by its ticker symbol.
func (r *Registry) BySymbol(chainID uint64, symbol string) (Token, bool) {
	t, ok := r.bySymbol[chainID][symbol]
	return t, ok
}

// All returns every known token on a chain.
func (r *Registry) All(chainID uint64) []Token {
	out := make([]Token, 0, len(r.byAddress[chainID]))
	for _, t := range r.byAddress[chainID] {
		out = append(out, t)
	}
	return out
}

// Addresses returns the contract addresses of every known token on a chain,
// in no particular order. Used to scope transfer log queries.
func (r *Registry) Addresses(chainID uint64) []string {
	out := make([]string, 0, len(r.byAddress[chainID]))
	for addr := range r.byAddress[chainID] {
		out = append(out, addr)
	}
	return out
}
