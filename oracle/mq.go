package oracle

import (
	"context"

	"github.com/arrowstate/rpclearn/alphabet"
)

// MQ is the membership-query contract of spec §4.2: MQ(word) → bool,
// deterministic and pure with respect to a run (repeated calls with equal
// words return equal results), backed by a word→bool cache and two
// monotone counters.
type MQ interface {
	// Query answers whether word is in this oracle's reference language.
	// An unknown symbol terminates the run (spec §4.2): implementations
	// panic rather than return a sentinel, since the caller has no
	// meaningful way to continue learning once Σ has been violated.
	Query(ctx context.Context, word alphabet.Word) bool

	// Reset clears the cache and zeroes both counters.
	Reset()

	// MQCount returns the number of cache misses (distinct words queried)
	// since the last Reset.
	MQCount() uint64

	// RPCCount returns the number of underlying RPC probes issued since
	// the last Reset.
	RPCCount() uint64
}
