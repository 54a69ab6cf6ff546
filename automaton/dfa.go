package automaton

import (
	"github.com/arrowstate/rpclearn/alphabet"
)

// State is an opaque state identity. Learners mint their own IDs — L* uses
// a canonical row key (lstar.Row.Key), TTT uses an access word's raw string
// form — and hand them to Builder; automaton never interprets the string.
type State string

// DFA is the immutable result of one learning round (spec §3, §4.6): a
// finite set of states, a start state, an accepting subset, and a total
// transition function over Σ.
type DFA struct {
	alphabet   *alphabet.Alphabet
	states     map[State]struct{}
	start      State
	accepting  map[State]struct{}
	transition map[State]map[alphabet.Symbol]State
}

// States returns the DFA's state set. The returned slice is a fresh copy;
// mutating it does not affect the DFA.
func (d *DFA) States() []State {
	out := make([]State, 0, len(d.states))
	for s := range d.states {
		out = append(out, s)
	}
	return out
}

// Start returns the DFA's start state.
func (d *DFA) Start() State {
	return d.start
}

// IsAccepting reports whether s is in the accepting set.
func (d *DFA) IsAccepting(s State) bool {
	_, ok := d.accepting[s]
	return ok
}

// Delta returns the successor of (s, sym), and whether that transition is
// defined. For a DFA returned by Builder.Build, Delta is always defined for
// every (state, symbol) pair, since Build enforces totality.
func (d *DFA) Delta(s State, sym alphabet.Symbol) (State, bool) {
	row, ok := d.transition[s]
	if !ok {
		return "", false
	}
	next, ok := row[sym]
	return next, ok
}

// Accepts reports whether the DFA accepts word: start at the start state,
// follow δ for each symbol, and accept iff the final state (after zero or
// more steps) is in the accepting set (spec §4.6). If δ is undefined at any
// step — which cannot happen for a Builder-produced DFA, but may for a
// hand-built one used in a test — Accepts rejects rather than panicking.
func (d *DFA) Accepts(word alphabet.Word) bool {
	current := d.start
	for _, sym := range word {
		next, ok := d.Delta(current, sym)
		if !ok {
			return false
		}
		current = next
	}
	return d.IsAccepting(current)
}
