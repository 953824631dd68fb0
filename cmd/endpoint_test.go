package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/w3net/internal/config"
	"github.com/Mohsinsiddi/w3net/internal/rpc"
)

func TestMaxHealthyBlock(t *testing.T) {
	results := []rpc.BenchmarkResult{
		{URL: "https://a.example", BlockNumber: 90},
		{URL: "https://b.example", BlockNumber: 100},
		{URL: "https://c.example", BlockNumber: 200, Err: context.DeadlineExceeded},
	}
	assert.Equal(t, uint64(100), maxHealthyBlock(results))
}

func TestMaxHealthyBlockNoResults(t *testing.T) {
	assert.Zero(t, maxHealthyBlock(nil))
}

func TestEndpointCheckHealthy(t *testing.T) {
	srv := nodeStub(t, map[string]string{
		"net_version":     `"result":"1"`,
		"eth_blockNumber": `"result":"0x64"`,
	})
	defer srv.Close()

	prev := cfg
	cfg = &config.Config{}
	defer func() { cfg = prev }()

	require.NoError(t, endpointCheckCmd.RunE(endpointCheckCmd, []string{srv.URL}))
}

func TestEndpointCheckDownEndpoint(t *testing.T) {
	prev := cfg
	cfg = &config.Config{}
	defer func() { cfg = prev }()

	// Nothing listens on this port; the command reports instead of failing.
	require.NoError(t, endpointCheckCmd.RunE(endpointCheckCmd, []string{"http://127.0.0.1:19992"}))
}
