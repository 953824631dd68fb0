// Package formatters converts values between caller-facing types and the
// JSON-RPC wire representation.
package formatters

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/Mohsinsiddi/w3net/internal/utils"
)

// InputBlockNumber normalizes a block number or tag for wire transmission.
//
// nil defaults to "latest". The tags "latest" and "pending" pass through,
// "earliest" and "genesis" become "0x0". Integer types and *big.Int are hex
// encoded; strings are passed through when already 0x-prefixed and otherwise
// parsed as decimal.
func InputBlockNumber(v any) (any, error) {
	switch n := v.(type) {
	case nil:
		return "latest", nil
	case string:
		switch strings.ToLower(n) {
		case "latest", "pending":
			return strings.ToLower(n), nil
		case "earliest", "genesis":
			return "0x0", nil
		}
		if strings.HasPrefix(n, "0x") {
			return n, nil
		}
		num, err := utils.HexToNumber(n)
		if err != nil {
			return nil, fmt.Errorf("invalid block number %q", n)
		}
		return utils.NumberToHex(num), nil
	case uint64:
		return utils.NumberToHex(n), nil
	case uint:
		return utils.NumberToHex(uint64(n)), nil
	case int:
		if n < 0 {
			return nil, fmt.Errorf("negative block number %d", n)
		}
		return utils.NumberToHex(uint64(n)), nil
	case int64:
		if n < 0 {
			return nil, fmt.Errorf("negative block number %d", n)
		}
		return utils.NumberToHex(uint64(n)), nil
	case *big.Int:
		if n == nil {
			return "latest", nil
		}
		if n.Sign() < 0 {
			return nil, fmt.Errorf("negative block number %s", n)
		}
		return "0x" + n.Text(16), nil
	default:
		return nil, fmt.Errorf("cannot use %T as a block number", v)
	}
}

// InputBool coerces an argument to a boolean. nil means false.
func InputBool(v any) (any, error) {
	switch b := v.(type) {
	case nil:
		return false, nil
	case bool:
		return b, nil
	default:
		return nil, fmt.Errorf("cannot use %T as a boolean", v)
	}
}
