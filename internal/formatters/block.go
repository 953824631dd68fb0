package formatters

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/Mohsinsiddi/w3net/internal/utils"
)

// ErrBlockNotFound is returned when the node answers a block query with null.
var ErrBlockNotFound = errors.New("block not found")

// Block is the caller-facing block record: quantities decoded to native
// integers, the miner address EIP-55 checksummed. Number and Hash are unset
// for a pending block.
type Block struct {
	Number          *big.Int
	Hash            common.Hash
	ParentHash      common.Hash
	Nonce           uint64
	Sha3Uncles      common.Hash
	Miner           string
	Difficulty      *big.Int
	TotalDifficulty *big.Int
	ExtraData       string
	Size            uint64
	GasLimit        uint64
	GasUsed         uint64
	BaseFee         *big.Int
	Timestamp       uint64
	Uncles          []common.Hash

	// TxHashes is populated when the block was fetched without full
	// transaction objects; Transactions when it was fetched with them.
	TxHashes     []common.Hash
	Transactions []*Transaction
}

// TxCount returns the number of transactions in the block regardless of how
// it was fetched.
func (b *Block) TxCount() int {
	if len(b.Transactions) > 0 {
		return len(b.Transactions)
	}
	return len(b.TxHashes)
}

// Transaction is a formatted transaction record from a full block fetch.
type Transaction struct {
	Hash             common.Hash
	Nonce            uint64
	BlockHash        common.Hash
	BlockNumber      *big.Int
	TransactionIndex uint64
	From             string
	To               string
	Value            *big.Int
	Gas              uint64
	GasPrice         *big.Int
	Input            string
}

type rawBlock struct {
	Number          *hexutil.Big      `json:"number"`
	Hash            *common.Hash      `json:"hash"`
	ParentHash      common.Hash       `json:"parentHash"`
	Nonce           *types.BlockNonce `json:"nonce"`
	Sha3Uncles      common.Hash       `json:"sha3Uncles"`
	Miner           string            `json:"miner"`
	Difficulty      *hexutil.Big      `json:"difficulty"`
	TotalDifficulty *hexutil.Big      `json:"totalDifficulty"`
	ExtraData       string            `json:"extraData"`
	Size            hexutil.Uint64    `json:"size"`
	GasLimit        hexutil.Uint64    `json:"gasLimit"`
	GasUsed         hexutil.Uint64    `json:"gasUsed"`
	BaseFee         *hexutil.Big      `json:"baseFeePerGas"`
	Timestamp       hexutil.Uint64    `json:"timestamp"`
	Uncles          []common.Hash     `json:"uncles"`
	Transactions    []json.RawMessage `json:"transactions"`
}

type rawTx struct {
	Hash             common.Hash    `json:"hash"`
	Nonce            hexutil.Uint64 `json:"nonce"`
	BlockHash        *common.Hash   `json:"blockHash"`
	BlockNumber      *hexutil.Big   `json:"blockNumber"`
	TransactionIndex hexutil.Uint64 `json:"transactionIndex"`
	From             string         `json:"from"`
	To               string         `json:"to"`
	Value            *hexutil.Big   `json:"value"`
	Gas              hexutil.Uint64 `json:"gas"`
	GasPrice         *hexutil.Big   `json:"gasPrice"`
	Input            string         `json:"input"`
}

// OutputBlock converts a raw eth_getBlockByNumber response into a Block.
func OutputBlock(raw json.RawMessage) (*Block, error) {
	if isNull(raw) {
		return nil, ErrBlockNotFound
	}

	var rb rawBlock
	if err := json.Unmarshal(raw, &rb); err != nil {
		return nil, fmt.Errorf("parsing block: %w", err)
	}

	b := &Block{
		ParentHash: rb.ParentHash,
		Sha3Uncles: rb.Sha3Uncles,
		Miner:      utils.ChecksumAddress(rb.Miner),
		ExtraData:  rb.ExtraData,
		Size:       uint64(rb.Size),
		GasLimit:   uint64(rb.GasLimit),
		GasUsed:    uint64(rb.GasUsed),
		Timestamp:  uint64(rb.Timestamp),
		Uncles:     rb.Uncles,
	}
	if rb.Number != nil {
		b.Number = rb.Number.ToInt()
	}
	if rb.Hash != nil {
		b.Hash = *rb.Hash
	}
	if rb.Nonce != nil {
		b.Nonce = rb.Nonce.Uint64()
	}
	if rb.Difficulty != nil {
		b.Difficulty = rb.Difficulty.ToInt()
	}
	if rb.TotalDifficulty != nil {
		b.TotalDifficulty = rb.TotalDifficulty.ToInt()
	}
	if rb.BaseFee != nil {
		b.BaseFee = rb.BaseFee.ToInt()
	}

	for _, txRaw := range rb.Transactions {
		// A block fetched without full objects carries bare hash strings.
		var hash common.Hash
		if err := json.Unmarshal(txRaw, &hash); err == nil {
			b.TxHashes = append(b.TxHashes, hash)
			continue
		}
		tx, err := outputTransaction(txRaw)
		if err != nil {
			return nil, err
		}
		b.Transactions = append(b.Transactions, tx)
	}

	return b, nil
}

func outputTransaction(raw json.RawMessage) (*Transaction, error) {
	var rt rawTx
	if err := json.Unmarshal(raw, &rt); err != nil {
		return nil, fmt.Errorf("parsing transaction: %w", err)
	}

	tx := &Transaction{
		Hash:             rt.Hash,
		Nonce:            uint64(rt.Nonce),
		TransactionIndex: uint64(rt.TransactionIndex),
		From:             utils.ChecksumAddress(rt.From),
		Gas:              uint64(rt.Gas),
		Input:            rt.Input,
	}
	if rt.To != "" {
		tx.To = utils.ChecksumAddress(rt.To)
	}
	if rt.BlockHash != nil {
		tx.BlockHash = *rt.BlockHash
	}
	if rt.BlockNumber != nil {
		tx.BlockNumber = rt.BlockNumber.ToInt()
	}
	if rt.Value != nil {
		tx.Value = rt.Value.ToInt()
	}
	if rt.GasPrice != nil {
		tx.GasPrice = rt.GasPrice.ToInt()
	}
	return tx, nil
}

func isNull(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	return v == nil
}
