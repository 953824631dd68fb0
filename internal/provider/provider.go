// Package provider implements the JSON-RPC transport used by the rest of
// the client. A Provider sends one named method call with positional
// arguments and returns the raw result payload.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
)

// Provider is the transport abstraction connecting to a node endpoint.
type Provider interface {
	// Call invokes a JSON-RPC method with positional params and returns the
	// raw result payload. A JSON-RPC error response is returned as *RPCError.
	Call(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// RPCError is a JSON-RPC error object returned by the node.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}
