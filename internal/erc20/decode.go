package erc20

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// DecodeUint256 interprets a call result as a single unsigned 256-bit
// integer. The result is never negative.
func DecodeUint256(result string) (*big.Int, error) {
	result = strings.TrimSpace(result)
	if result == "" || result == "0x" {
		return new(big.Int), nil
	}
	data, err := hexutil.Decode(result)
	if err != nil {
		return nil, fmt.Errorf("invalid uint256 result %q: %v", result, err)
	}
	if len(data) > 32 {
		data = data[len(data)-32:]
	}
	return new(uint256.Int).SetBytes(data).ToBig(), nil
}

// DecodeBool interprets a call result as an ABI-encoded boolean.
func DecodeBool(result string) (bool, error) {
	n, err := DecodeUint256(result)
	if err != nil {
		return false, err
	}
	return n.Sign() != 0, nil
}

// DecodeStringResult decodes an ABI-encoded dynamic string return value.
// Some early tokens return name/symbol as a bytes32 instead; those are
// handled by trimming the zero padding.
func DecodeStringResult(result string) (string, error) {
	data, err := hexutil.Decode(strings.TrimSpace(result))
	if err != nil {
		return "", fmt.Errorf("invalid string result: %v", err)
	}
	if len(data) == 32 {
		return trimNulls(string(data)), nil
	}
	if len(data) < 64 {
		return "", fmt.Errorf("string result too short: %d bytes", len(data))
	}
	// word 0 is the offset, word 1 the byte length, payload follows
	length := new(big.Int).SetBytes(data[32:64])
	if !length.IsInt64() || int64(len(data)) < 64+length.Int64() {
		return "", fmt.Errorf("string result truncated")
	}
	return trimNulls(string(data[64 : 64+length.Int64()])), nil
}

func trimNulls(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == 0 {
			return -1
		}
		return r
	}, s))
}
