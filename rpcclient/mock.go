package rpcclient

import (
	"context"
	"sync"

	"github.com/arrowstate/rpclearn/alphabet"
)

// MockProber is an in-process Prober for tests and examples: it never
// touches the network. Outcome reports ok for the given Symbol; symbols with
// no configured outcome succeed by default, mirroring a reachable endpoint
// with no injected faults.
//
// MockProber is safe for concurrent use so it can double as a call-count
// spy if a future host wants to drive multiple oracles against one fake
// endpoint; the core itself is single-threaded per spec §5.
type MockProber struct {
	mu       sync.Mutex
	outcomes map[alphabet.Symbol]bool
	calls    int
}

// NewMockProber builds a MockProber. Pass outcomes to fail specific symbols;
// any symbol absent from outcomes succeeds.
func NewMockProber(outcomes map[alphabet.Symbol]bool) *MockProber {
	cp := make(map[alphabet.Symbol]bool, len(outcomes))
	for k, v := range outcomes {
		cp[k] = v
	}
	return &MockProber{outcomes: cp}
}

// Probe implements Prober.
func (m *MockProber) Probe(_ context.Context, sym alphabet.Symbol) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	ok, configured := m.outcomes[sym]
	if !configured {
		return true, nil
	}
	return ok, nil
}

// Calls returns the number of Probe invocations so far.
func (m *MockProber) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
