package rpc

import (
	"context"
	"fmt"
	"math/big"

	gethRpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog/log"
	config "github.com/walletkit-dev/walletkit/configs"
	"github.com/walletkit-dev/walletkit/internal/common"
	"github.com/walletkit-dev/walletkit/internal/metrics"
)

// CallParams is the payload of a read-only eth_call.
type CallParams struct {
	To   string `json:"to"`
	Data string `json:"data"`
}

// TxParams is the payload of an eth_sendTransaction. Kept as a map so
// callers can merge gas, gasPrice, value and similar options into it.
type TxParams map[string]interface{}

// Provider is the JSON-RPC surface the token layer needs. Concrete
// adapters wrap a node endpoint; tests substitute fakes.
type Provider interface {
	CallContract(ctx context.Context, params CallParams) (string, error)
	SendTransaction(ctx context.Context, params TxParams) (string, error)
	BlockNumber(ctx context.Context) (*big.Int, error)
	Close()
}

type Client struct {
	RPCClient *gethRpc.Client
	url       string
}

func Initialize() (Provider, error) {
	rpcUrl := config.Cfg.RPC.URL
	if rpcUrl == "" {
		return nil, fmt.Errorf("RPC_URL environment variable is not set")
	}
	return InitializeWithURL(rpcUrl)
}

func InitializeWithURL(url string) (Provider, error) {
	log.Debug().Msg("Initializing RPC")
	rpcClient, dialErr := gethRpc.Dial(url)
	if dialErr != nil {
		return nil, dialErr
	}
	return &Client{RPCClient: rpcClient, url: url}, nil
}

func (c *Client) GetURL() string {
	return c.url
}

func (c *Client) Close() {
	c.RPCClient.Close()
}

func (c *Client) CallContract(ctx context.Context, params CallParams) (string, error) {
	metrics.ProviderCalls.WithLabelValues("eth_call").Inc()
	var result string
	err := c.RPCClient.CallContext(ctx, &result, "eth_call", params, "latest")
	if err != nil {
		metrics.ProviderCallErrors.WithLabelValues("eth_call").Inc()
		return "", fmt.Errorf("eth_call to %s failed: %v", params.To, err)
	}
	return result, nil
}

func (c *Client) SendTransaction(ctx context.Context, params TxParams) (string, error) {
	metrics.ProviderCalls.WithLabelValues("eth_sendTransaction").Inc()
	var txHash string
	err := c.RPCClient.CallContext(ctx, &txHash, "eth_sendTransaction", params)
	if err != nil {
		metrics.ProviderCallErrors.WithLabelValues("eth_sendTransaction").Inc()
		return "", fmt.Errorf("eth_sendTransaction failed: %v", err)
	}
	return txHash, nil
}

func (c *Client) BlockNumber(ctx context.Context) (*big.Int, error) {
	metrics.ProviderCalls.WithLabelValues("eth_blockNumber").Inc()
	var result string
	err := c.RPCClient.CallContext(ctx, &result, "eth_blockNumber")
	if err != nil {
		metrics.ProviderCallErrors.WithLabelValues("eth_blockNumber").Inc()
		return nil, fmt.Errorf("failed to get latest block number: %v", err)
	}
	blockNumber, err := common.HexToBig(result)
	if err != nil {
		return nil, fmt.Errorf("invalid block number %q: %v", result, err)
	}
	metrics.ChainHead.Set(float64(blockNumber.Int64()))
	return blockNumber, nil
}
