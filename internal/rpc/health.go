package rpc

import (
	"context"
	"time"
)

const healthTimeout = 5 * time.Second

// HealthCheck probes a single endpoint and reports whether it is usable.
// When bestBlock > 0, nodes further than staleBlockThreshold behind it are
// marked unhealthy even if they respond.
func HealthCheck(ctx context.Context, url string, bestBlock uint64) (Endpoint, error) {
	probeCtx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	r := probe(probeCtx, url)

	ep := Endpoint{
		URL:         r.URL,
		Latency:     r.Latency,
		BlockNumber: r.BlockNumber,
		Healthy:     r.Err == nil,
		Checked:     true,
	}
	if r.Err == nil && bestBlock > r.BlockNumber && bestBlock-r.BlockNumber > staleBlockThreshold {
		ep.Healthy = false
	}
	return ep, r.Err
}
