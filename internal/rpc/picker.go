package rpc

import (
	"errors"
	"sync"
	"time"
)

// ErrNoHealthyEndpoint is returned when no usable endpoint is available.
var ErrNoHealthyEndpoint = errors.New("no healthy endpoint available")

// Algorithm defines how an endpoint is selected.
type Algorithm string

const (
	AlgorithmFastest    Algorithm = "fastest"
	AlgorithmRoundRobin Algorithm = "round-robin"
	AlgorithmFailover   Algorithm = "failover"

	// Discard nodes more than this many blocks behind the best.
	staleBlockThreshold = 3
	// Keep a fastest-mode winner for this long before rescoring.
	cacheTTL = 5 * time.Minute
)

// Endpoint is a single candidate with its measured attributes.
type Endpoint struct {
	URL         string
	Latency     time.Duration
	BlockNumber uint64
	Healthy     bool // meaningful only when Checked
	Checked     bool
}

// Picker selects an endpoint according to the configured algorithm.
type Picker struct {
	algo        Algorithm
	mu          sync.Mutex
	rrIndex     int
	cachedURL   string
	cacheExpiry time.Time
}

// NewPicker creates a Picker with the given algorithm.
func NewPicker(algo Algorithm) *Picker {
	return &Picker{algo: algo}
}

// Pick selects an endpoint from the list.
func (p *Picker) Pick(endpoints []Endpoint) (*Endpoint, error) {
	if len(endpoints) == 0 {
		return nil, ErrNoHealthyEndpoint
	}

	switch p.algo {
	case AlgorithmRoundRobin:
		return p.pickRoundRobin(endpoints)
	case AlgorithmFailover:
		return p.pickFailover(endpoints)
	default:
		return p.pickFastest(endpoints)
	}
}

// pickFastest scores candidates on latency and chain recency, caching the
// winner for cacheTTL.
func (p *Picker) pickFastest(endpoints []Endpoint) (*Endpoint, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cachedURL != "" && time.Now().Before(p.cacheExpiry) {
		for i := range endpoints {
			e := &endpoints[i]
			if e.URL != p.cachedURL {
				continue
			}
			// A winner marked unhealthy since it was cached must not be
			// pinned for the rest of the TTL; fall through and rescore.
			if !e.Checked || e.Healthy {
				return e, nil
			}
			break
		}
	}

	var bestBlock uint64
	for _, e := range endpoints {
		if e.BlockNumber > bestBlock {
			bestBlock = e.BlockNumber
		}
	}

	candidates := usableEndpoints(endpoints)
	if len(candidates) == 0 {
		return nil, ErrNoHealthyEndpoint
	}

	var winner *Endpoint
	var bestScore float64
	for _, e := range candidates {
		if bestBlock > 0 && bestBlock-e.BlockNumber > staleBlockThreshold {
			continue
		}
		if s := score(e, bestBlock); winner == nil || s > bestScore {
			winner = e
			bestScore = s
		}
	}
	if winner == nil {
		return nil, ErrNoHealthyEndpoint
	}

	p.cachedURL = winner.URL
	p.cacheExpiry = time.Now().Add(cacheTTL)
	return winner, nil
}

// pickRoundRobin cycles through all usable endpoints.
func (p *Picker) pickRoundRobin(endpoints []Endpoint) (*Endpoint, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	usable := usableEndpoints(endpoints)
	if len(usable) == 0 {
		return nil, ErrNoHealthyEndpoint
	}

	idx := p.rrIndex % len(usable)
	p.rrIndex = (idx + 1) % len(usable)
	return usable[idx], nil
}

// pickFailover tries endpoints in order, skipping known-unhealthy ones.
func (p *Picker) pickFailover(endpoints []Endpoint) (*Endpoint, error) {
	for i := range endpoints {
		e := &endpoints[i]
		if e.Checked && !e.Healthy {
			continue
		}
		return e, nil
	}
	return nil, ErrNoHealthyEndpoint
}

func score(e *Endpoint, bestBlock uint64) float64 {
	var s float64
	if e.Latency > 0 {
		s += 1000.0 / float64(e.Latency.Milliseconds()+1)
	}
	if bestBlock > 0 {
		behind := bestBlock - e.BlockNumber
		s += float64(10) - float64(behind) // loses a point per block behind
	}
	return s
}

// usableEndpoints filters candidates. Unchecked endpoints stay eligible;
// checked ones must be healthy.
func usableEndpoints(endpoints []Endpoint) []*Endpoint {
	var out []*Endpoint
	for i := range endpoints {
		e := &endpoints[i]
		if e.Checked && !e.Healthy {
			continue
		}
		out = append(out, e)
	}
	return out
}
