package network

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/w3net/internal/provider"
)

// rpcMock serves a fixed JSON-RPC result per method and records every call.
// An unknown method returns an RPC error.
func rpcMock(t *testing.T, responses map[string]any) (*httptest.Server, *callLog) {
	t.Helper()
	log := &callLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
			Params []any  `json:"params"`
			ID     uint64 `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		log.record(req.Method, req.Params)

		w.Header().Set("Content-Type", "application/json")
		if result, ok := responses[req.Method]; ok {
			json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
				"jsonrpc": "2.0",
				"id":      req.ID,
				"result":  result,
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"jsonrpc": "2.0",
			"id":      req.ID,
			"error":   map[string]any{"code": -32000, "message": "node unavailable"},
		})
	}))
	return srv, log
}

type callLog struct {
	mu      sync.Mutex
	methods []string
	params  map[string][]any
}

func (l *callLog) record(method string, params []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.methods = append(l.methods, method)
	if l.params == nil {
		l.params = make(map[string][]any)
	}
	l.params[method] = params
}

func (l *callLog) count(method string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, m := range l.methods {
		if m == method {
			n++
		}
	}
	return n
}

func genesisBlock(hash string) map[string]any {
	return map[string]any{
		"number":       "0x0",
		"hash":         hash,
		"parentHash":   "0x0000000000000000000000000000000000000000000000000000000000000000",
		"nonce":        "0x0000000000000042",
		"miner":        "0x0000000000000000000000000000000000000000",
		"difficulty":   "0x400000000",
		"gasLimit":     "0x1388",
		"gasUsed":      "0x0",
		"size":         "0x21c",
		"timestamp":    "0x0",
		"transactions": []any{},
	}
}

func newTestNet(srvURL string) *Net {
	return New(provider.NewHTTP(srvURL))
}

// ---------------------------------------------------------------------------
// ID / PeerCount — hex-to-number conversion
// ---------------------------------------------------------------------------

func TestIDHexResult(t *testing.T) {
	srv, _ := rpcMock(t, map[string]any{"net_version": "0x2a"})
	defer srv.Close()

	id, err := newTestNet(srv.URL).ID(context.Background()).Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
}

func TestIDDecimalResult(t *testing.T) {
	srv, _ := rpcMock(t, map[string]any{"net_version": "1"})
	defer srv.Close()

	id, err := newTestNet(srv.URL).ID(context.Background()).Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)
}

func TestPeerCount(t *testing.T) {
	srv, _ := rpcMock(t, map[string]any{"net_peerCount": "0x2a"})
	defer srv.Close()

	peers, err := newTestNet(srv.URL).PeerCount(context.Background()).Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(42), peers)
}

// ---------------------------------------------------------------------------
// Listening — raw passthrough
// ---------------------------------------------------------------------------

func TestListeningTrue(t *testing.T) {
	srv, _ := rpcMock(t, map[string]any{"net_listening": true})
	defer srv.Close()

	listening, err := newTestNet(srv.URL).Listening(context.Background()).Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, listening)
}

func TestListeningFalse(t *testing.T) {
	srv, _ := rpcMock(t, map[string]any{"net_listening": false})
	defer srv.Close()

	listening, err := newTestNet(srv.URL).Listening(context.Background()).Wait(context.Background())
	require.NoError(t, err)
	assert.False(t, listening)
}

// ---------------------------------------------------------------------------
// BlockByNumber — argument formatting and block output
// ---------------------------------------------------------------------------

func TestBlockByNumberArguments(t *testing.T) {
	srv, log := rpcMock(t, map[string]any{"eth_getBlockByNumber": genesisBlock(mainGenesis)})
	defer srv.Close()

	block, err := newTestNet(srv.URL).
		BlockByNumber(context.Background(), uint64(0), false).
		Wait(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []any{"0x0", false}, log.params["eth_getBlockByNumber"])
	assert.Equal(t, mainGenesis, block.Hash.Hex())
	assert.Zero(t, block.Number.Sign())
}

func TestBlockByNumberLatestDefault(t *testing.T) {
	srv, log := rpcMock(t, map[string]any{"eth_getBlockByNumber": genesisBlock(mainGenesis)})
	defer srv.Close()

	_, err := newTestNet(srv.URL).
		BlockByNumber(context.Background(), nil, true).
		Wait(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []any{"latest", true}, log.params["eth_getBlockByNumber"])
}

func TestBlockByNumberBadArgument(t *testing.T) {
	srv, log := rpcMock(t, map[string]any{"eth_getBlockByNumber": genesisBlock(mainGenesis)})
	defer srv.Close()

	_, err := newTestNet(srv.URL).
		BlockByNumber(context.Background(), 3.14, false).
		Wait(context.Background())
	require.Error(t, err)
	assert.Zero(t, log.count("eth_getBlockByNumber"), "bad argument must not reach the wire")
}

// ---------------------------------------------------------------------------
// NetworkType — classification
// ---------------------------------------------------------------------------

func networkTypeOf(t *testing.T, version string, genesisHash string) Type {
	t.Helper()
	srv, _ := rpcMock(t, map[string]any{
		"net_version":          version,
		"eth_getBlockByNumber": genesisBlock(genesisHash),
	})
	defer srv.Close()

	typ, err := newTestNet(srv.URL).NetworkType(context.Background()).Wait(context.Background())
	require.NoError(t, err)
	return typ
}

func TestNetworkTypeKnownNetworks(t *testing.T) {
	assert.Equal(t, TypeMain, networkTypeOf(t, "1", mainGenesis))
	assert.Equal(t, TypeMorden, networkTypeOf(t, "2", mordenGenesis))
	assert.Equal(t, TypeRopsten, networkTypeOf(t, "3", ropstenGenesis))
	assert.Equal(t, TypeRinkeby, networkTypeOf(t, "4", rinkebyGenesis))
	assert.Equal(t, TypeKovan, networkTypeOf(t, "42", kovanGenesis))
}

func TestNetworkTypePrivateOnUnknownGenesis(t *testing.T) {
	other := "0x00000000000000000000000000000000000000000000000000000000deadbeef"
	assert.Equal(t, TypePrivate, networkTypeOf(t, "1", other))
}

func TestNetworkTypePrivateOnMismatchedID(t *testing.T) {
	assert.Equal(t, TypePrivate, networkTypeOf(t, "5", mainGenesis))
}

func TestNetworkTypeFetchesGenesisBlock(t *testing.T) {
	srv, log := rpcMock(t, map[string]any{
		"net_version":          "1",
		"eth_getBlockByNumber": genesisBlock(mainGenesis),
	})
	defer srv.Close()

	_, err := newTestNet(srv.URL).NetworkType(context.Background()).Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []any{"0x0", false}, log.params["eth_getBlockByNumber"])
}

func TestNetworkTypeIDFailureShortCircuits(t *testing.T) {
	// net_version missing -> RPC error; the block fetch must never happen.
	srv, log := rpcMock(t, map[string]any{
		"eth_getBlockByNumber": genesisBlock(mainGenesis),
	})
	defer srv.Close()

	f := newTestNet(srv.URL).NetworkType(context.Background())

	cbErr := make(chan error, 1)
	f.OnComplete(func(_ Type, err error) { cbErr <- err })

	_, err := f.Wait(context.Background())
	require.Error(t, err)

	var rpcErr *provider.RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.ErrorIs(t, <-cbErr, err)
	assert.Zero(t, log.count("eth_getBlockByNumber"))
}

func TestNetworkTypeBlockFailurePropagates(t *testing.T) {
	srv, _ := rpcMock(t, map[string]any{"net_version": "1"})
	defer srv.Close()

	_, err := newTestNet(srv.URL).NetworkType(context.Background()).Wait(context.Background())
	require.Error(t, err)

	var rpcErr *provider.RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, -32000, rpcErr.Code)
}

// ---------------------------------------------------------------------------
// Injected collaborators
// ---------------------------------------------------------------------------

type countingUtils struct {
	calls int
}

func (u *countingUtils) HexToNumber(s string) (uint64, error) {
	u.calls++
	if s == "0x2a" {
		return 42, nil
	}
	return 0, fmt.Errorf("unexpected value %q", s)
}

func TestWithUtilsInjected(t *testing.T) {
	srv, _ := rpcMock(t, map[string]any{"net_version": "0x2a"})
	defer srv.Close()

	u := &countingUtils{}
	net := New(provider.NewHTTP(srv.URL), WithUtils(u))

	id, err := net.ID(context.Background()).Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
	assert.Equal(t, 1, u.calls)
}
