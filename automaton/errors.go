package automaton

import "errors"

// Sentinel errors for the automaton package.
var (
	// ErrNoStartState indicates Build was called before SetStart.
	ErrNoStartState = errors.New("automaton: no start state set")

	// ErrUnknownState indicates an operation referenced a state never
	// registered via AddState.
	ErrUnknownState = errors.New("automaton: unknown state")

	// ErrIncompleteTransitions indicates the transition function is not
	// total: some (state, symbol) pair has no registered successor. DFA
	// totality (spec §3, §8) requires every state to have a transition for
	// every symbol in Σ before a DFA is emitted.
	ErrIncompleteTransitions = errors.New("automaton: transition function is not total")

	// ErrNilAlphabet indicates a Builder was constructed with a nil
	// alphabet.Alphabet.
	ErrNilAlphabet = errors.New("automaton: alphabet is nil")
)
