// Package utils holds numeric and address conversion helpers shared by the
// formatters and the network facade.
package utils

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"
)

// HexToNumber converts a quantity result to uint64. Accepts both 0x-prefixed
// hex and plain decimal: some nodes answer net_version with a decimal string
// while quantities like net_peerCount come back as hex.
func HexToNumber(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty quantity")
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse hex quantity %q: %w", s, err)
		}
		return n, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse quantity %q: %w", s, err)
	}
	return n, nil
}

// HexToBig converts a 0x-prefixed hex quantity to a big.Int.
func HexToBig(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimPrefix(s, "0x"), 16)
	if !ok {
		return nil, fmt.Errorf("could not parse hex quantity %q", s)
	}
	return n, nil
}

// NumberToHex formats n as a 0x-prefixed hex quantity.
func NumberToHex(n uint64) string {
	return fmt.Sprintf("0x%x", n)
}

// ChecksumAddress returns addr in EIP-55 mixed-case form. Invalid input is
// returned unchanged.
func ChecksumAddress(addr string) string {
	hexAddr := strings.ToLower(strings.TrimPrefix(addr, "0x"))
	if len(hexAddr) != 40 {
		return addr
	}

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(hexAddr))
	hash := fmt.Sprintf("%x", h.Sum(nil))

	out := make([]byte, 40)
	for i := 0; i < 40; i++ {
		c := hexAddr[i]
		if c >= 'a' && c <= 'f' && hash[i] >= '8' {
			c = c - 'a' + 'A'
		}
		out[i] = c
	}
	return "0x" + string(out)
}
