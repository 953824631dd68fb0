// Package network implements the net_* facade: network id, listening state,
// peer count, block retrieval and genesis-based network classification.
package network

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Mohsinsiddi/w3net/internal/formatters"
	"github.com/Mohsinsiddi/w3net/internal/method"
	"github.com/Mohsinsiddi/w3net/internal/provider"
)

// Formatters is the wire-formatting capability the facade depends on.
type Formatters interface {
	InputBlockNumber(v any) (any, error)
	InputBool(v any) (any, error)
	OutputBlock(raw json.RawMessage) (*formatters.Block, error)
}

// Utils is the numeric-conversion capability the facade depends on.
type Utils interface {
	HexToNumber(s string) (uint64, error)
}

// Net is the network facade. It holds its collaborators from construction
// and never mutates them.
type Net struct {
	provider provider.Provider
	fmts     Formatters
	utils    Utils
}

// Option configures a Net.
type Option func(*Net)

// WithFormatters replaces the default formatter set.
func WithFormatters(f Formatters) Option {
	return func(n *Net) { n.fmts = f }
}

// WithUtils replaces the default conversion helpers.
func WithUtils(u Utils) Option {
	return func(n *Net) { n.utils = u }
}

// New creates a Net facade over the given provider.
func New(p provider.Provider, opts ...Option) *Net {
	n := &Net{
		provider: p,
		fmts:     stdFormatters{},
		utils:    stdUtils{},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// ID fetches the network id via net_version.
func (n *Net) ID(ctx context.Context) *method.Future[uint64] {
	m := &method.Method[uint64]{
		Name:   "net_version",
		Output: n.outputNumber,
	}
	return m.Call(ctx, n.provider)
}

// Listening reports whether the node is listening for network connections.
// The raw boolean result passes through unformatted.
func (n *Net) Listening(ctx context.Context) *method.Future[bool] {
	m := &method.Method[bool]{Name: "net_listening"}
	return m.Call(ctx, n.provider)
}

// PeerCount fetches the number of peers connected to the node.
func (n *Net) PeerCount(ctx context.Context) *method.Future[uint64] {
	m := &method.Method[uint64]{
		Name:   "net_peerCount",
		Output: n.outputNumber,
	}
	return m.Call(ctx, n.provider)
}

// BlockByNumber fetches a block via eth_getBlockByNumber. number accepts
// anything InputBlockNumber does (integers, 0x hex, "latest", ...); fullTx
// selects full transaction objects over bare hashes.
func (n *Net) BlockByNumber(ctx context.Context, number any, fullTx bool) *method.Future[*formatters.Block] {
	m := &method.Method[*formatters.Block]{
		Name:   "eth_getBlockByNumber",
		Inputs: []method.InputFormatter{n.fmts.InputBlockNumber, n.fmts.InputBool},
		Output: n.fmts.OutputBlock,
	}
	return m.Call(ctx, n.provider, number, fullTx)
}

// NetworkType classifies the connected network by its id and genesis block
// hash. Both must match a known network exactly; everything else is
// TypePrivate. A failure in either fetch settles the future with that error
// and classification is never attempted.
func (n *Net) NetworkType(ctx context.Context) *method.Future[Type] {
	f := method.NewFuture[Type]()
	go func() {
		id, err := n.ID(ctx).Wait(ctx)
		if err != nil {
			f.Complete("", err)
			return
		}
		genesis, err := n.BlockByNumber(ctx, uint64(0), false).Wait(ctx)
		if err != nil {
			f.Complete("", err)
			return
		}
		f.Complete(classify(id, genesis.Hash), nil)
	}()
	return f
}

// outputNumber decodes a string result and converts it to uint64.
func (n *Net) outputNumber(raw json.RawMessage) (uint64, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("expected quantity string: %w", err)
	}
	return n.utils.HexToNumber(s)
}
