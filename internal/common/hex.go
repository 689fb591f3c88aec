package common

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// AddressLength is the length of a hex-encoded address without the 0x prefix.
	AddressLength = 40
	// TopicLength is the length of a hex-encoded 32-byte topic without the 0x prefix.
	TopicLength = 64

	ZeroAddress = "0x0000000000000000000000000000000000000000"
)

// NormalizeAddress lower-cases an address, drops any EIP-55 checksum casing
// and guarantees a 0x prefix.
func NormalizeAddress(address string) string {
	address = strings.ToLower(strings.TrimSpace(address))
	if !strings.HasPrefix(address, "0x") {
		address = "0x" + address
	}
	return address
}

// IsAddress reports whether s looks like a 20-byte hex address.
func IsAddress(s string) bool {
	s = NormalizeAddress(s)
	if len(s) != AddressLength+2 {
		return false
	}
	_, err := hexutil.Decode(s)
	return err == nil
}

// PadTopicAddress left-pads a 20-byte address with zeroes to the 32-byte
// topic encoding used by indexed event arguments.
func PadTopicAddress(address string) (string, error) {
	address = NormalizeAddress(address)
	if len(address) != AddressLength+2 {
		return "", fmt.Errorf("invalid address length %d for %q", len(address)-2, address)
	}
	if _, err := hexutil.Decode(address); err != nil {
		return "", fmt.Errorf("invalid address %q: %v", address, err)
	}
	return "0x" + strings.Repeat("0", TopicLength-AddressLength) + address[2:], nil
}

// UnpadTopicAddress strips the 12 zero bytes that pad an address up to a
// 32-byte topic, returning the normalized 20-byte address.
func UnpadTopicAddress(topic string) (string, error) {
	topic = NormalizeAddress(topic)
	if len(topic) != TopicLength+2 {
		return "", fmt.Errorf("invalid topic length %d for %q", len(topic)-2, topic)
	}
	padding := topic[2 : 2+TopicLength-AddressLength]
	if strings.Trim(padding, "0") != "" {
		return "", fmt.Errorf("topic %q is not a padded address", topic)
	}
	return "0x" + topic[2+TopicLength-AddressLength:], nil
}

// HexToBig interprets a 0x-prefixed hex quantity as an unsigned big integer.
// An empty or 0x value decodes to zero. Only hex digits are accepted after
// the prefix: big.Int.SetString would happily take sign characters, and this
// parses values off the raw log endpoint.
func HexToBig(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0x" {
		return new(big.Int), nil
	}
	if !strings.HasPrefix(s, "0x") {
		return nil, fmt.Errorf("hex quantity %q missing 0x prefix", s)
	}
	for _, c := range s[2:] {
		if !isHexDigit(c) {
			return nil, fmt.Errorf("invalid hex quantity %q", s)
		}
	}
	n, ok := new(big.Int).SetString(s[2:], 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex quantity %q", s)
	}
	return n, nil
}

func isHexDigit(c rune) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// HexToUint64 decodes a 0x-prefixed hex quantity into a uint64.
func HexToUint64(s string) (uint64, error) {
	n, err := HexToBig(s)
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() {
		return 0, fmt.Errorf("hex quantity %q overflows uint64", s)
	}
	return n.Uint64(), nil
}

// HexToBool decodes an ABI-encoded boolean return value. Anything non-zero
// is true, which matches how contracts report success flags.
func HexToBool(s string) (bool, error) {
	n, err := HexToBig(s)
	if err != nil {
		return false, err
	}
	return n.Sign() != 0, nil
}
