package erc20

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/walletkit-dev/walletkit/internal/common"
	"github.com/walletkit-dev/walletkit/internal/rpc"
)

// Method signatures of the standard ERC-20 interface (EIP-20).
const (
	SigName         = "name()"
	SigSymbol       = "symbol()"
	SigDecimals     = "decimals()"
	SigTotalSupply  = "totalSupply()"
	SigBalanceOf    = "balanceOf(address)"
	SigAllowance    = "allowance(address,address)"
	SigTransfer     = "transfer(address,uint256)"
	SigTransferFrom = "transferFrom(address,address,uint256)"
	SigApprove      = "approve(address,uint256)"
)

// TransferEventHash is keccak256("Transfer(address,address,uint256)"),
// topic 0 of every ERC-20 Transfer log.
const TransferEventHash = "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"

const wordLength = 64

// Selector returns the 4-byte method selector for a signature string,
// 0x-prefixed. The selector depends only on the signature, never on
// call arguments.
func Selector(signature string) string {
	hash := crypto.Keccak256([]byte(strings.TrimSpace(signature)))
	return fmt.Sprintf("0x%x", hash[:4])
}

// EncodeAddressArg encodes an address as a 32-byte ABI word. The address
// is normalized before encoding so checksummed input never leaks into
// call data.
func EncodeAddressArg(address string) (string, error) {
	address = common.NormalizeAddress(address)
	if !common.IsAddress(address) {
		return "", fmt.Errorf("invalid address argument %q", address)
	}
	return strings.Repeat("0", wordLength-common.AddressLength) + address[2:], nil
}

// EncodeUintArg encodes a non-negative integer as a 32-byte ABI word.
func EncodeUintArg(value *big.Int) (string, error) {
	if value == nil || value.Sign() < 0 {
		return "", fmt.Errorf("uint argument must be non-negative, got %v", value)
	}
	hex := value.Text(16)
	if len(hex) > wordLength {
		return "", fmt.Errorf("uint argument %v overflows 32 bytes", value)
	}
	return strings.Repeat("0", wordLength-len(hex)) + hex, nil
}

// BuildCall assembles a {to, data} call payload: the 4-byte selector of
// the method signature followed by the already-encoded argument words.
func BuildCall(contract string, signature string, encodedArgs ...string) rpc.CallParams {
	var data strings.Builder
	data.WriteString(Selector(signature))
	for _, arg := range encodedArgs {
		data.WriteString(arg)
	}
	return rpc.CallParams{
		To:   common.NormalizeAddress(contract),
		Data: data.String(),
	}
}
