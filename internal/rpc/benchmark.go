// Package rpc selects among candidate node endpoints: it benchmarks them,
// health-checks them, and picks one according to a configured algorithm.
package rpc

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Mohsinsiddi/w3net/internal/network"
	"github.com/Mohsinsiddi/w3net/internal/provider"
	"github.com/Mohsinsiddi/w3net/internal/utils"
)

// BenchmarkResult holds the result of probing a single endpoint.
type BenchmarkResult struct {
	URL         string
	Latency     time.Duration
	NetworkID   uint64
	BlockNumber uint64
	Err         error
}

// Benchmark probes all endpoints in parallel. Latency is measured on
// net_version; the head block number is fetched separately so the picker can
// discard stale nodes.
func Benchmark(ctx context.Context, urls []string) []BenchmarkResult {
	results := make([]BenchmarkResult, len(urls))
	var wg sync.WaitGroup

	for i, url := range urls {
		wg.Add(1)
		go func(idx int, u string) {
			defer wg.Done()
			results[idx] = probe(ctx, u)
		}(i, url)
	}

	wg.Wait()
	return results
}

func probe(ctx context.Context, url string) BenchmarkResult {
	p := provider.NewHTTP(url)
	net := network.New(p)

	start := time.Now()
	id, err := net.ID(ctx).Wait(ctx)
	latency := time.Since(start)
	if err != nil {
		return BenchmarkResult{URL: url, Latency: latency, Err: err}
	}

	head, err := headBlock(ctx, p)
	if err != nil {
		return BenchmarkResult{URL: url, Latency: latency, NetworkID: id, Err: err}
	}

	return BenchmarkResult{URL: url, Latency: latency, NetworkID: id, BlockNumber: head}
}

// headBlock fetches the current chain head height.
func headBlock(ctx context.Context, p provider.Provider) (uint64, error) {
	raw, err := p.Call(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	return utils.HexToNumber(s)
}

// ResultsToEndpoints converts benchmark results into picker endpoints, all
// marked as checked.
func ResultsToEndpoints(results []BenchmarkResult) []Endpoint {
	endpoints := make([]Endpoint, 0, len(results))
	for _, r := range results {
		endpoints = append(endpoints, Endpoint{
			URL:         r.URL,
			Latency:     r.Latency,
			BlockNumber: r.BlockNumber,
			Healthy:     r.Err == nil,
			Checked:     true,
		})
	}
	return endpoints
}

// SelectBest benchmarks urls and returns the winner under the named
// algorithm. A single-entry list short-circuits without probing; an empty
// algorithm defaults to fastest.
func SelectBest(ctx context.Context, urls []string, algorithm string) (string, error) {
	if len(urls) == 0 {
		return "", ErrNoHealthyEndpoint
	}
	if len(urls) == 1 {
		return urls[0], nil
	}

	algo := Algorithm(algorithm)
	if algo == "" {
		algo = AlgorithmFastest
	}

	endpoints := ResultsToEndpoints(Benchmark(ctx, urls))
	winner, err := NewPicker(algo).Pick(endpoints)
	if err != nil {
		return "", err
	}
	return winner.URL, nil
}
