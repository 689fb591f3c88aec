package erc20

import (
	"context"
	"math/big"

	"github.com/walletkit-dev/walletkit/internal/common"
	"github.com/walletkit-dev/walletkit/internal/rpc"
)

// Client issues ERC-20 contract calls through a Provider. It holds no
// state beyond the provider handle and is safe for concurrent use.
type Client struct {
	provider rpc.Provider
}

func NewClient(provider rpc.Provider) *Client {
	return &Client{provider: provider}
}

// Name returns the raw hex result of name(). Use DecodeStringResult to
// turn it into a display string.
func (c *Client) Name(ctx context.Context, contract string) (string, error) {
	return c.provider.CallContract(ctx, BuildCall(contract, SigName))
}

// Symbol returns the raw hex result of symbol().
func (c *Client) Symbol(ctx context.Context, contract string) (string, error) {
	return c.provider.CallContract(ctx, BuildCall(contract, SigSymbol))
}

// Decimals returns the raw hex result of decimals().
func (c *Client) Decimals(ctx context.Context, contract string) (string, error) {
	return c.provider.CallContract(ctx, BuildCall(contract, SigDecimals))
}

func (c *Client) TotalSupply(ctx context.Context, contract string) (*big.Int, error) {
	result, err := c.provider.CallContract(ctx, BuildCall(contract, SigTotalSupply))
	if err != nil {
		return nil, err
	}
	return DecodeUint256(result)
}

func (c *Client) BalanceOf(ctx context.Context, contract string, owner string) (*big.Int, error) {
	ownerArg, err := EncodeAddressArg(owner)
	if err != nil {
		return nil, err
	}
	result, err := c.provider.CallContract(ctx, BuildCall(contract, SigBalanceOf, ownerArg))
	if err != nil {
		return nil, err
	}
	return DecodeUint256(result)
}

func (c *Client) Allowance(ctx context.Context, contract string, owner string, spender string) (*big.Int, error) {
	ownerArg, err := EncodeAddressArg(owner)
	if err != nil {
		return nil, err
	}
	spenderArg, err := EncodeAddressArg(spender)
	if err != nil {
		return nil, err
	}
	result, err := c.provider.CallContract(ctx, BuildCall(contract, SigAllowance, ownerArg, spenderArg))
	if err != nil {
		return nil, err
	}
	return DecodeUint256(result)
}

// Transfer submits a state-changing transfer(to, value) transaction from
// the given account. Entries of opts are merged into the transaction
// parameters, letting callers set gas, gasPrice or value. The provider
// result is decoded as the ERC-20 boolean return.
func (c *Client) Transfer(ctx context.Context, contract string, from string, to string, value *big.Int, opts rpc.TxParams) (bool, error) {
	toArg, err := EncodeAddressArg(to)
	if err != nil {
		return false, err
	}
	valueArg, err := EncodeUintArg(value)
	if err != nil {
		return false, err
	}
	call := BuildCall(contract, SigTransfer, toArg, valueArg)

	params := rpc.TxParams{
		"from": common.NormalizeAddress(from),
		"to":   call.To,
		"data": call.Data,
	}
	for k, v := range opts {
		params[k] = v
	}

	result, err := c.provider.SendTransaction(ctx, params)
	if err != nil {
		return false, err
	}
	return common.HexToBool(result)
}

// TransferFrom is issued as a read-only call, matching the contract the
// wallet has always shipped with. Pending product confirmation before it
// moves to a transaction (see DESIGN.md).
func (c *Client) TransferFrom(ctx context.Context, contract string, from string, to string, value *big.Int) (bool, error) {
	fromArg, err := EncodeAddressArg(from)
	if err != nil {
		return false, err
	}
	toArg, err := EncodeAddressArg(to)
	if err != nil {
		return false, err
	}
	valueArg, err := EncodeUintArg(value)
	if err != nil {
		return false, err
	}
	result, err := c.provider.CallContract(ctx, BuildCall(contract, SigTransferFrom, fromArg, toArg, valueArg))
	if err != nil {
		return false, err
	}
	return DecodeBool(result)
}

// Approve is issued as a read-only call, same contract as TransferFrom.
func (c *Client) Approve(ctx context.Context, contract string, spender string, value *big.Int) (bool, error) {
	spenderArg, err := EncodeAddressArg(spender)
	if err != nil {
		return false, err
	}
	valueArg, err := EncodeUintArg(value)
	if err != nil {
		return false, err
	}
	result, err := c.provider.CallContract(ctx, BuildCall(contract, SigApprove, spenderArg, valueArg))
	if err != nil {
		return false, err
	}
	return DecodeBool(result)
}
