package automaton

import (
	"fmt"

	"github.com/arrowstate/rpclearn/alphabet"
)

// Builder assembles a DFA one state/transition at a time. It mirrors the
// teacher corpus's functional-construction style (lvlath/core.NewGraph) but
// is mutable-by-method rather than functional-options, since learners build
// a DFA incrementally from table/tree state rather than from a fixed option
// list known up front.
type Builder struct {
	alphabet   *alphabet.Alphabet
	states     map[State]struct{}
	start      State
	haveStart  bool
	accepting  map[State]struct{}
	transition map[State]map[alphabet.Symbol]State
}

// NewBuilder starts a Builder over the given alphabet.
func NewBuilder(a *alphabet.Alphabet) (*Builder, error) {
	if a == nil {
		return nil, ErrNilAlphabet
	}
	return &Builder{
		alphabet:   a,
		states:     make(map[State]struct{}),
		accepting:  make(map[State]struct{}),
		transition: make(map[State]map[alphabet.Symbol]State),
	}, nil
}

// AddState registers s, if not already present. Idempotent.
func (b *Builder) AddState(s State) {
	b.states[s] = struct{}{}
	if _, ok := b.transition[s]; !ok {
		b.transition[s] = make(map[alphabet.Symbol]State)
	}
}

// SetStart designates s as the start state, implicitly calling AddState.
func (b *Builder) SetStart(s State) {
	b.AddState(s)
	b.start = s
	b.haveStart = true
}

// SetAccepting marks s as accepting, implicitly calling AddState.
func (b *Builder) SetAccepting(s State) {
	b.AddState(s)
	b.accepting[s] = struct{}{}
}

// AddTransition registers δ(from, sym) = to, implicitly calling AddState for
// both from and to.
func (b *Builder) AddTransition(from State, sym alphabet.Symbol, to State) {
	b.AddState(from)
	b.AddState(to)
	b.transition[from][sym] = to
}

// Build validates totality (every registered state has a transition for
// every symbol of Σ, spec §3/§8) and a start state, then returns the
// immutable DFA. Build does not mutate the Builder; it may be called again
// after further AddTransition calls (not expected, but not forbidden).
func (b *Builder) Build() (*DFA, error) {
	if !b.haveStart {
		return nil, ErrNoStartState
	}
	for s := range b.states {
		row, ok := b.transition[s]
		if !ok {
			return nil, fmt.Errorf("%w: state %q has no transitions", ErrIncompleteTransitions, s)
		}
		for _, sym := range b.alphabet.Symbols() {
			if _, ok := row[sym]; !ok {
				return nil, fmt.Errorf("%w: state %q missing symbol %q", ErrIncompleteTransitions, s, sym.String())
			}
		}
	}

	states := make(map[State]struct{}, len(b.states))
	for s := range b.states {
		states[s] = struct{}{}
	}
	accepting := make(map[State]struct{}, len(b.accepting))
	for s := range b.accepting {
		accepting[s] = struct{}{}
	}
	transition := make(map[State]map[alphabet.Symbol]State, len(b.transition))
	for s, row := range b.transition {
		rowCopy := make(map[alphabet.Symbol]State, len(row))
		for sym, to := range row {
			rowCopy[sym] = to
		}
		transition[s] = rowCopy
	}

	return &DFA{
		alphabet:   b.alphabet,
		states:     states,
		start:      b.start,
		accepting:  accepting,
		transition: transition,
	}, nil
}
