package network

import (
	"encoding/json"

	"github.com/Mohsinsiddi/w3net/internal/formatters"
	"github.com/Mohsinsiddi/w3net/internal/utils"
)

// stdFormatters adapts the formatters package to the Formatters contract.
type stdFormatters struct{}

func (stdFormatters) InputBlockNumber(v any) (any, error) { return formatters.InputBlockNumber(v) }
func (stdFormatters) InputBool(v any) (any, error)        { return formatters.InputBool(v) }
func (stdFormatters) OutputBlock(raw json.RawMessage) (*formatters.Block, error) {
	return formatters.OutputBlock(raw)
}

// stdUtils adapts the utils package to the Utils contract.
type stdUtils struct{}

func (stdUtils) HexToNumber(s string) (uint64, error) { return utils.HexToNumber(s) }
