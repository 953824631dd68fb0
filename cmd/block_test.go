package cmd

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/Mohsinsiddi/w3net/internal/formatters"
)

func TestCommaSep(t *testing.T) {
	assert.Equal(t, "0", commaSep(0))
	assert.Equal(t, "999", commaSep(999))
	assert.Equal(t, "1,000", commaSep(1000))
	assert.Equal(t, "19,345,678", commaSep(19345678))
}

func TestRenderBlock(t *testing.T) {
	b := &formatters.Block{
		Number:    big.NewInt(19345678),
		Hash:      common.HexToHash("0xd4e56740f876aef8c010b86a40d5f56745a118d0906a34e69aec8c0db1cb8fa3"),
		Miner:     "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		GasLimit:  30_000_000,
		GasUsed:   12_000_000,
		Size:      54321,
		Timestamp: 1_700_000_000,
		TxHashes:  []common.Hash{{0x01}, {0x02}},
	}

	out := renderBlock(b, "https://node.example")
	assert.Contains(t, out, "#19,345,678")
	assert.Contains(t, out, "0xd4e56740f876aef8c010b86a40d5f56745a118d0906a34e69aec8c0db1cb8fa3")
	assert.Contains(t, out, "https://node.example")
	assert.Contains(t, out, "2")
}

func TestRenderBlockPending(t *testing.T) {
	b := &formatters.Block{}
	out := renderBlock(b, "https://node.example")
	assert.Contains(t, out, "pending")
	assert.Contains(t, out, "—")
}

func TestEndpointHost(t *testing.T) {
	assert.Equal(t, "node.example", endpointHost("https://node.example/v1/abc"))
	assert.Equal(t, "node.example:8545", endpointHost("http://node.example:8545"))
	assert.Equal(t, "", endpointHost("not a url://"))
}
