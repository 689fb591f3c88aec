package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walletkit-dev/walletkit/internal/erc20"
	"github.com/walletkit-dev/walletkit/internal/rpc"
	"github.com/walletkit-dev/walletkit/internal/tokens"
)

const (
	testContract = "0xdac17f958d2ee523a2206206994597c13d831ec7"
	testAccount  = "0x00000000000000000000000000000000000beef0"
)

type fakeProvider struct {
	blockNumber *big.Int
	err         error
}

func (f *fakeProvider) CallContract(ctx context.Context, params rpc.CallParams) (string, error) {
	return "", nil
}

func (f *fakeProvider) SendTransaction(ctx context.Context, params rpc.TxParams) (string, error) {
	return "", nil
}

func (f *fakeProvider) BlockNumber(ctx context.Context) (*big.Int, error) {
	return f.blockNumber, f.err
}

func (f *fakeProvider) Close() {}

type fakeTransport struct {
	response []byte
	err      error
	lastBody []byte
	called   bool
}

func (f *fakeTransport) Post(ctx context.Context, body []byte) ([]byte, error) {
	f.called = true
	f.lastBody = body
	return f.response, f.err
}

func testRegistry() *tokens.Registry {
	return tokens.NewRegistry([]tokens.Token{
		{Address: testContract, Symbol: "USDT", Name: "Tether USD", Decimals: 6, ChainID: 1},
	})
}

type decodedQuery struct {
	JsonRpc string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []struct {
		Address   []string  `json:"address"`
		FromBlock string    `json:"fromBlock"`
		Topics    []*string `json:"topics"`
	} `json:"params"`
}

func TestBuildTransferLogsQueryInbound(t *testing.T) {
	body, err := BuildTransferLogsQuery([]string{testContract}, Inbound, testAccount)
	require.NoError(t, err)

	var q decodedQuery
	require.NoError(t, json.Unmarshal(body, &q))

	assert.Equal(t, "2.0", q.JsonRpc)
	assert.Equal(t, 2, q.ID)
	assert.Equal(t, "eth_getLogs", q.Method)
	require.Len(t, q.Params, 1)
	assert.Equal(t, []string{testContract}, q.Params[0].Address)
	assert.Equal(t, "0x0", q.Params[0].FromBlock)

	topics := q.Params[0].Topics
	require.Len(t, topics, 3)
	require.NotNil(t, topics[0])
	assert.Equal(t, erc20.TransferEventHash, *topics[0])
	assert.Nil(t, topics[1])
	require.NotNil(t, topics[2])
	assert.Equal(t, "0x00000000000000000000000000000000000000000000000000000000000beef0", *topics[2])
}

func TestBuildTransferLogsQueryOutbound(t *testing.T) {
	body, err := BuildTransferLogsQuery([]string{testContract}, Outbound, testAccount)
	require.NoError(t, err)

	var q decodedQuery
	require.NoError(t, json.Unmarshal(body, &q))

	topics := q.Params[0].Topics
	require.Len(t, topics, 3)
	require.NotNil(t, topics[1])
	assert.Equal(t, "0x00000000000000000000000000000000000000000000000000000000000beef0", *topics[1])
	assert.Nil(t, topics[2])
}

func TestBuildTransferLogsQueryBadDirection(t *testing.T) {
	_, err := BuildTransferLogsQuery([]string{testContract}, Direction("sideways"), testAccount)
	assert.Error(t, err)
}

func TestDecodeEmptyStringErrorIsSuccess(t *testing.T) {
	raw := []byte(`{"jsonrpc":"2.0","id":2,"error":"","result":[{"transactionHash":"0xabc"}]}`)
	entries, err := decodeLogsResponse(raw)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "0xabc", entries[0].TransactionHash)
}

func TestDecodeNonEmptyErrorFails(t *testing.T) {
	raw := []byte(`{"jsonrpc":"2.0","id":2,"error":"query limit exceeded"}`)
	_, err := decodeLogsResponse(raw)
	var rpcErr *RpcError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, "query limit exceeded", rpcErr.Message)
}

func TestDecodeErrorObjectFails(t *testing.T) {
	raw := []byte(`{"jsonrpc":"2.0","id":2,"error":{"code":-32005,"message":"limit exceeded"}}`)
	_, err := decodeLogsResponse(raw)
	var rpcErr *RpcError
	require.ErrorAs(t, err, &rpcErr)
	assert.Contains(t, rpcErr.Message, "limit exceeded")
}

func TestDecodeMalformedJSON(t *testing.T) {
	_, err := decodeLogsResponse([]byte(`{"jsonrpc":`))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.NotEmpty(t, parseErr.Message)
}

func TestTransferHistoryScenario(t *testing.T) {
	// head block 100, one transfer mined at block 90 carrying value 100
	target := "0x1111111111111111111111111111111111111111"
	resp := fmt.Sprintf(`{"jsonrpc":"2.0","id":2,"result":[{
		"address":"%s",
		"transactionHash":"0xdeadbeef",
		"blockNumber":"0x5a",
		"logIndex":"0x0",
		"data":"0x0000000000000000000000000000000000000000000000000000000000000064",
		"topics":[
			"%s",
			"0x0000000000000000000000000000000000000000000000000000000000000000",
			"0x000000000000000000000000%s"
		]}]}`, testContract, erc20.TransferEventHash, target[2:])

	provider := &fakeProvider{blockNumber: big.NewInt(100)}
	transport := &fakeTransport{response: []byte(resp)}
	assembler := NewAssembler(provider, transport, testRegistry())

	records, err := assembler.TransferHistory(context.Background(), 1, target, Inbound)
	require.NoError(t, err)
	require.Len(t, records, 1)

	record, ok := records[RecordKey{Hash: "0xdeadbeef", LogIndex: 0}]
	require.True(t, ok)
	assert.Equal(t, "10", record.Confirmations.String())
	assert.Equal(t, "100", record.Value.String())
	assert.Equal(t, "0x0000000000000000000000000000000000000000", record.From)
	assert.Equal(t, target, record.To)
	assert.Equal(t, "USDT", record.Symbol)
	assert.Equal(t, Inbound, record.Type)
	assert.True(t, record.Transfer)
	assert.False(t, record.Timestamp.IsZero())
	assert.Nil(t, record.GasPrice)
	assert.Nil(t, record.GasUsed)
	assert.True(t, record.Confirmations.Sign() >= 0)
}

func TestTransferHistoryProviderFailureShortCircuits(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	transport := &fakeTransport{}
	assembler := NewAssembler(provider, transport, testRegistry())

	_, err := assembler.TransferHistory(context.Background(), 1, testAccount, Outbound)
	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.False(t, transport.called, "log query must not run when head block resolution fails")
}

func TestTransferHistoryMalformedResponse(t *testing.T) {
	provider := &fakeProvider{blockNumber: big.NewInt(100)}
	transport := &fakeTransport{response: []byte("not json at all")}
	assembler := NewAssembler(provider, transport, testRegistry())

	_, err := assembler.TransferHistory(context.Background(), 1, testAccount, Inbound)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestTransferHistoryMultipleEventsSameTransaction(t *testing.T) {
	resp := fmt.Sprintf(`{"jsonrpc":"2.0","id":2,"result":[
		{"address":"%[1]s","transactionHash":"0xaaa","blockNumber":"0x5a","logIndex":"0x1",
		 "data":"0x01","topics":["%[2]s","0x0000000000000000000000000000000000000000000000000000000000000000","0x00000000000000000000000000000000000000000000000000000000000beef0"]},
		{"address":"%[1]s","transactionHash":"0xaaa","blockNumber":"0x5a","logIndex":"0x2",
		 "data":"0x02","topics":["%[2]s","0x0000000000000000000000000000000000000000000000000000000000000000","0x00000000000000000000000000000000000000000000000000000000000beef0"]}
	]}`, testContract, erc20.TransferEventHash)

	provider := &fakeProvider{blockNumber: big.NewInt(100)}
	transport := &fakeTransport{response: []byte(resp)}
	assembler := NewAssembler(provider, transport, testRegistry())

	records, err := assembler.TransferHistory(context.Background(), 1, testAccount, Inbound)
	require.NoError(t, err)
	assert.Len(t, records, 2, "log index keeps both transfers of one transaction")

	byHash := ByHash(records)
	require.Len(t, byHash, 1)
	assert.Equal(t, uint64(2), byHash["0xaaa"].LogIndex)
}

func TestTransferHistorySkipsNegativeQuantities(t *testing.T) {
	// a hostile endpoint sneaking sign characters into data or blockNumber
	// must not yield records with negative values or inflated confirmations
	resp := fmt.Sprintf(`{"jsonrpc":"2.0","id":2,"result":[
		{"address":"%[1]s","transactionHash":"0xccc","blockNumber":"0x5a","logIndex":"0x0",
		 "data":"0x-64","topics":["%[2]s","0x0000000000000000000000000000000000000000000000000000000000000000","0x00000000000000000000000000000000000000000000000000000000000beef0"]},
		{"address":"%[1]s","transactionHash":"0xddd","blockNumber":"0x-5a","logIndex":"0x0",
		 "data":"0x64","topics":["%[2]s","0x0000000000000000000000000000000000000000000000000000000000000000","0x00000000000000000000000000000000000000000000000000000000000beef0"]}
	]}`, testContract, erc20.TransferEventHash)

	provider := &fakeProvider{blockNumber: big.NewInt(100)}
	transport := &fakeTransport{response: []byte(resp)}
	assembler := NewAssembler(provider, transport, testRegistry())

	records, err := assembler.TransferHistory(context.Background(), 1, testAccount, Inbound)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestTransferHistorySkipsUnknownContracts(t *testing.T) {
	resp := fmt.Sprintf(`{"jsonrpc":"2.0","id":2,"result":[
		{"address":"0x9999999999999999999999999999999999999999","transactionHash":"0xbbb","blockNumber":"0x5a","logIndex":"0x0",
		 "data":"0x01","topics":["%s","0x0000000000000000000000000000000000000000000000000000000000000000","0x00000000000000000000000000000000000000000000000000000000000beef0"]}
	]}`, erc20.TransferEventHash)

	provider := &fakeProvider{blockNumber: big.NewInt(100)}
	transport := &fakeTransport{response: []byte(resp)}
	assembler := NewAssembler(provider, transport, testRegistry())

	records, err := assembler.TransferHistory(context.Background(), 1, testAccount, Inbound)
	require.NoError(t, err)
	assert.Empty(t, records)
}
