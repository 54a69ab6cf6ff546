package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arrowstate/rpclearn/alphabet"
	"github.com/arrowstate/rpclearn/automaton"
)

func twoSymbolAlphabet(t *testing.T) *alphabet.Alphabet {
	t.Helper()
	a, err := alphabet.New('a', 'b')
	require.NoError(t, err)
	return a
}

func TestBuilder_RejectsNilAlphabet(t *testing.T) {
	t.Parallel()
	b, err := automaton.NewBuilder(nil)
	require.Nil(t, b)
	require.ErrorIs(t, err, automaton.ErrNilAlphabet)
}

func TestBuilder_RequiresStartState(t *testing.T) {
	t.Parallel()
	a := twoSymbolAlphabet(t)
	b, err := automaton.NewBuilder(a)
	require.NoError(t, err)

	b.AddState("s0")
	b.AddTransition("s0", 'a', "s0")
	b.AddTransition("s0", 'b', "s0")

	_, err = b.Build()
	require.ErrorIs(t, err, automaton.ErrNoStartState)
}

func TestBuilder_RequiresTotality(t *testing.T) {
	t.Parallel()
	a := twoSymbolAlphabet(t)
	b, err := automaton.NewBuilder(a)
	require.NoError(t, err)

	b.SetStart("s0")
	b.AddTransition("s0", 'a', "s0") // missing 'b'

	_, err = b.Build()
	require.ErrorIs(t, err, automaton.ErrIncompleteTransitions)
}

// buildEvenA builds the textbook "even number of a's" DFA over {a,b}: s0 is
// the start/accepting state, s1 the non-accepting one, 'a' toggles, 'b'
// self-loops.
func buildEvenA(t *testing.T) *automaton.DFA {
	t.Helper()
	a := twoSymbolAlphabet(t)
	b, err := automaton.NewBuilder(a)
	require.NoError(t, err)

	b.SetStart("s0")
	b.SetAccepting("s0")
	b.AddState("s1")
	b.AddTransition("s0", 'a', "s1")
	b.AddTransition("s0", 'b', "s0")
	b.AddTransition("s1", 'a', "s0")
	b.AddTransition("s1", 'b', "s1")

	dfa, err := b.Build()
	require.NoError(t, err)
	return dfa
}

func TestDFA_Accepts(t *testing.T) {
	t.Parallel()
	dfa := buildEvenA(t)

	tests := []struct {
		word   string
		accept bool
	}{
		{"", true},
		{"a", false},
		{"aa", true},
		{"aba", false},
		{"abab", true},
		{"bbbb", true},
	}
	for _, tc := range tests {
		got := dfa.Accepts(alphabet.NewWord(tc.word))
		require.Equal(t, tc.accept, got, "word %q", tc.word)
	}
}

func TestDFA_DeltaUndefinedForUnknownState(t *testing.T) {
	t.Parallel()
	dfa := buildEvenA(t)

	_, ok := dfa.Delta("nonexistent", 'a')
	require.False(t, ok)
}

func TestDFA_StatesIsACopy(t *testing.T) {
	t.Parallel()
	dfa := buildEvenA(t)

	states := dfa.States()
	states[0] = "tampered"

	statesAgain := dfa.States()
	require.NotEqual(t, states, statesAgain)
}
