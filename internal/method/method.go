// Package method turns JSON-RPC method descriptors into asynchronous
// invocations. A Method pairs a wire name with optional per-argument input
// formatters and an output formatter; Call dispatches it through a provider
// and hands back a Future.
package method

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Mohsinsiddi/w3net/internal/provider"
)

// InputFormatter normalizes one positional argument for wire transmission.
type InputFormatter func(v any) (any, error)

// OutputFormatter converts a raw JSON-RPC result into the caller-facing value.
type OutputFormatter[T any] func(raw json.RawMessage) (T, error)

// Method describes a single JSON-RPC method.
//
// Inputs, when non-nil, must have one entry per positional argument; a nil
// entry passes the argument through unchanged. A nil Output unmarshals the
// raw result directly into T.
type Method[T any] struct {
	Name   string
	Inputs []InputFormatter
	Output OutputFormatter[T]
}

// Call starts the invocation on its own goroutine and returns its future.
func (m *Method[T]) Call(ctx context.Context, p provider.Provider, args ...any) *Future[T] {
	f := NewFuture[T]()
	go func() {
		f.Complete(m.invoke(ctx, p, args))
	}()
	return f
}

func (m *Method[T]) invoke(ctx context.Context, p provider.Provider, args []any) (T, error) {
	var zero T

	if m.Inputs != nil && len(args) != len(m.Inputs) {
		return zero, fmt.Errorf("%s: expected %d arguments, got %d", m.Name, len(m.Inputs), len(args))
	}

	params := make([]any, len(args))
	for i, arg := range args {
		if m.Inputs != nil && m.Inputs[i] != nil {
			v, err := m.Inputs[i](arg)
			if err != nil {
				return zero, fmt.Errorf("%s: argument %d: %w", m.Name, i, err)
			}
			params[i] = v
			continue
		}
		params[i] = arg
	}

	raw, err := p.Call(ctx, m.Name, params...)
	if err != nil {
		return zero, err
	}

	if m.Output == nil {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return zero, fmt.Errorf("%s: decoding result: %w", m.Name, err)
		}
		return v, nil
	}

	v, err := m.Output(raw)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", m.Name, err)
	}
	return v, nil
}
