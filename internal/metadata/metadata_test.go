package metadata

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walletkit-dev/walletkit/internal/erc20"
	"github.com/walletkit-dev/walletkit/internal/rpc"
)

// selectorProvider answers eth_call by method selector.
type selectorProvider struct {
	results map[string]string
}

func (p *selectorProvider) CallContract(ctx context.Context, params rpc.CallParams) (string, error) {
	selector := params.Data
	if len(selector) > 10 {
		selector = selector[:10]
	}
	result, ok := p.results[selector]
	if !ok {
		return "", fmt.Errorf("unexpected call %s", selector)
	}
	return result, nil
}

func (p *selectorProvider) SendTransaction(ctx context.Context, params rpc.TxParams) (string, error) {
	return "", fmt.Errorf("not supported")
}

func (p *selectorProvider) BlockNumber(ctx context.Context) (*big.Int, error) {
	return big.NewInt(0), nil
}

func (p *selectorProvider) Close() {}

func encodeString(s string) string {
	payload := fmt.Sprintf("%x", s)
	padded := payload + strings.Repeat("0", 64-len(payload)%64)
	return "0x" +
		fmt.Sprintf("%064x", 32) +
		fmt.Sprintf("%064x", len(s)) +
		padded
}

func TestLookupFromChain(t *testing.T) {
	provider := &selectorProvider{results: map[string]string{
		erc20.Selector(erc20.SigName):        encodeString("Tether USD"),
		erc20.Selector(erc20.SigSymbol):      encodeString("USDT"),
		erc20.Selector(erc20.SigDecimals):    "0x" + fmt.Sprintf("%064x", 6),
		erc20.Selector(erc20.SigTotalSupply): "0x" + fmt.Sprintf("%064x", big.NewInt(1000000)),
	}}
	svc := NewService(erc20.NewClient(provider), nil, 0)

	meta, err := svc.Lookup(context.Background(), "0xDAC17F958D2ee523a2206206994597C13D831EC7")
	require.NoError(t, err)
	assert.Equal(t, "0xdac17f958d2ee523a2206206994597c13d831ec7", meta.Address)
	assert.Equal(t, "Tether USD", meta.Name)
	assert.Equal(t, "USDT", meta.Symbol)
	assert.Equal(t, uint8(6), meta.Decimals)
	assert.Equal(t, "1000000", meta.TotalSupply.String())
}

func TestLookupNonTokenContractIsTokenDataError(t *testing.T) {
	// calls against nonexistent or non-ERC-20 contracts return empty data
	provider := &selectorProvider{results: map[string]string{
		erc20.Selector(erc20.SigName): "0x",
	}}
	svc := NewService(erc20.NewClient(provider), nil, 0)

	_, err := svc.Lookup(context.Background(), "0x00000000000000000000000000000000000000aa")
	var dataErr *TokenDataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, "0x00000000000000000000000000000000000000aa", dataErr.Contract)
}

func TestLookupRejectsBadDecimals(t *testing.T) {
	provider := &selectorProvider{results: map[string]string{
		erc20.Selector(erc20.SigName):     encodeString("Weird"),
		erc20.Selector(erc20.SigSymbol):   encodeString("WRD"),
		erc20.Selector(erc20.SigDecimals): "0x" + fmt.Sprintf("%064x", 300),
	}}
	svc := NewService(erc20.NewClient(provider), nil, 0)

	_, err := svc.Lookup(context.Background(), "0xdac17f958d2ee523a2206206994597c13d831ec7")
	var dataErr *TokenDataError
	assert.ErrorAs(t, err, &dataErr)
}
