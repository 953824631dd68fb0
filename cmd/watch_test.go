package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/w3net/internal/network"
	"github.com/Mohsinsiddi/w3net/internal/provider"
)

// nodeStub fakes a JSON-RPC node with a canned response body per method.
func nodeStub(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
			ID     uint64 `json:"id"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		body, ok := responses[req.Method]
		if !ok {
			body = `"error":{"code":-32601,"message":"method not found"}`
		}
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,%s}`, req.ID, body)
	}))
}

func TestSampleStatusHealthy(t *testing.T) {
	srv := nodeStub(t, map[string]string{
		"net_listening":        `"result":true`,
		"net_peerCount":        `"result":"0x19"`,
		"eth_getBlockByNumber": `"result":{"number":"0x10"}`,
	})
	defer srv.Close()

	msg := sampleStatus(context.Background(), network.New(provider.NewHTTP(srv.URL)))
	assert.Empty(t, msg.ErrMsg)
	assert.True(t, msg.Listening)
	assert.Equal(t, uint64(25), msg.Peers)
	assert.Equal(t, uint64(16), msg.Block)
}

func TestSampleStatusSurfacesListeningFailure(t *testing.T) {
	srv := nodeStub(t, map[string]string{
		"net_listening": `"error":{"code":-32000,"message":"node down"}`,
	})
	defer srv.Close()

	msg := sampleStatus(context.Background(), network.New(provider.NewHTTP(srv.URL)))
	assert.Contains(t, msg.ErrMsg, "sample failed")
	assert.False(t, msg.Listening)
}

func TestSampleStatusSurfacesPeerCountFailure(t *testing.T) {
	srv := nodeStub(t, map[string]string{
		"net_listening": `"result":true`,
		"net_peerCount": `"error":{"code":-32000,"message":"peers unavailable"}`,
	})
	defer srv.Close()

	msg := sampleStatus(context.Background(), network.New(provider.NewHTTP(srv.URL)))
	assert.True(t, msg.Listening)
	assert.Contains(t, msg.ErrMsg, "peer count failed")
	assert.Zero(t, msg.Peers)
}

func TestSampleStatusSurfacesHeadBlockFailure(t *testing.T) {
	srv := nodeStub(t, map[string]string{
		"net_listening":        `"result":true`,
		"net_peerCount":        `"result":"0x2"`,
		"eth_getBlockByNumber": `"error":{"code":-32000,"message":"pruned"}`,
	})
	defer srv.Close()

	msg := sampleStatus(context.Background(), network.New(provider.NewHTTP(srv.URL)))
	assert.True(t, msg.Listening)
	assert.Equal(t, uint64(2), msg.Peers)
	assert.Contains(t, msg.ErrMsg, "head block failed")
	assert.Zero(t, msg.Block)
}
