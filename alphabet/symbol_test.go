package alphabet_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arrowstate/rpclearn/alphabet"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty", func(t *testing.T) {
		a, err := alphabet.New()
		require.Nil(t, a)
		require.ErrorIs(t, err, alphabet.ErrEmptyAlphabet)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		a, err := alphabet.New('A', 'B', 'A')
		require.Nil(t, a)
		require.ErrorIs(t, err, alphabet.ErrDuplicateSymbol)
	})

	t.Run("preserves order", func(t *testing.T) {
		a, err := alphabet.New('C', 'A', 'B')
		require.NoError(t, err)
		require.Equal(t, []alphabet.Symbol{'C', 'A', 'B'}, a.Symbols())
		require.Equal(t, 3, a.Len())
	})
}

func TestAlphabet_Contains(t *testing.T) {
	t.Parallel()

	a, err := alphabet.New('A', 'T', 'B')
	require.NoError(t, err)

	require.True(t, a.Contains('A'))
	require.False(t, a.Contains('M'))
}

func TestAlphabet_Validate(t *testing.T) {
	t.Parallel()

	a, err := alphabet.New('A', 'T', 'B')
	require.NoError(t, err)

	require.NoError(t, a.Validate(alphabet.NewWord("ATB")))
	require.ErrorIs(t, a.Validate(alphabet.NewWord("ATM")), alphabet.ErrUnknownSymbol)
}

func TestWord_StringAndRaw(t *testing.T) {
	t.Parallel()

	empty := alphabet.NewWord("")
	require.Equal(t, "ε", empty.String())
	require.Equal(t, "", empty.Raw())

	w := alphabet.NewWord("ATB")
	require.Equal(t, "ATB", w.String())
	require.Equal(t, "ATB", w.Raw())
}

func TestWord_AppendDoesNotAlias(t *testing.T) {
	t.Parallel()

	base := alphabet.NewWord("A")
	w1 := base.Append('T')
	w2 := base.Append('B')

	require.Equal(t, "AT", w1.String())
	require.Equal(t, "AB", w2.String())
	require.Equal(t, "A", base.String(), "Append must not mutate its receiver")
}

func TestWord_Concat(t *testing.T) {
	t.Parallel()

	w := alphabet.NewWord("A").Concat(alphabet.NewWord("TB"))
	require.Equal(t, "ATB", w.String())
}

func TestWord_Prefixes(t *testing.T) {
	t.Parallel()

	got := alphabet.NewWord("ATB").Prefixes()
	require.Len(t, got, 3)
	require.Equal(t, "A", got[0].String())
	require.Equal(t, "AT", got[1].String())
	require.Equal(t, "ATB", got[2].String())
}

func TestWord_PrefixesIndependentOfSource(t *testing.T) {
	t.Parallel()

	w := alphabet.NewWord("AT")
	prefixes := w.Prefixes()
	prefixes[0][0] = 'X'
	require.Equal(t, "AT", w.String(), "mutating a returned prefix must not affect the source word")
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	t.Parallel()
	require.False(t, errors.Is(alphabet.ErrUnknownSymbol, alphabet.ErrEmptyAlphabet))
}
