// Package oracle implements the membership-query contract MQ(word) → bool
// (spec §4.2) against a configurable rpcclient.Prober, in three reference
// variants — Simple, Medium, Complex — each realizing a different language
// over the same alphabet.Alphabet.
//
// All three variants share one cache/counter core (base.go): a word→bool
// cache keyed by the word's raw symbol sequence, an MQ-count (cache-miss)
// counter, and an RPC-count (probe) counter, reset together by Reset. Per
// spec §5 the learning core is single-threaded and cooperative — there is
// no internal parallelism here, so the cache and counters are plain Go maps
// and uints with no locking, unlike the teacher repo's RWMutex-guarded
// core.Graph (see DESIGN.md).
package oracle
