package oracle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arrowstate/rpclearn/alphabet"
	"github.com/arrowstate/rpclearn/oracle"
	"github.com/arrowstate/rpclearn/rpcclient"
)

func TestNewSimple_RejectsNilDependencies(t *testing.T) {
	t.Parallel()

	_, err := oracle.NewSimple(nil, rpcclient.NewMockProber(nil), nil)
	require.ErrorIs(t, err, oracle.ErrNilAlphabet)

	_, err = oracle.NewSimple(alphabet.Reference, nil, nil)
	require.ErrorIs(t, err, oracle.ErrNilProber)
}

func TestSimple_AcceptsIffEveryProbeSucceeds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		word     string
		outcomes map[alphabet.Symbol]bool
		want     bool
	}{
		{"empty word rejected", "", nil, false},
		{"all probes succeed", "ATB", nil, true},
		{"one probe fails", "ATB", map[alphabet.Symbol]bool{alphabet.T: false}, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			prober := rpcclient.NewMockProber(tc.outcomes)
			mq, err := oracle.NewSimple(alphabet.Reference, prober, nil)
			require.NoError(t, err)

			got := mq.Query(context.Background(), alphabet.NewWord(tc.word))
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSimple_CachesResultsAndCountsCacheMissesOnly(t *testing.T) {
	t.Parallel()

	prober := rpcclient.NewMockProber(nil)
	mq, err := oracle.NewSimple(alphabet.Reference, prober, nil)
	require.NoError(t, err)

	w := alphabet.NewWord("AT")
	first := mq.Query(context.Background(), w)
	second := mq.Query(context.Background(), w)

	require.Equal(t, first, second)
	require.Equal(t, uint64(1), mq.MQCount(), "repeated query on the same word must not re-count as a cache miss")
	require.Equal(t, uint64(2), mq.RPCCount(), "two symbols probed once each on the first (uncached) evaluation")
}

func TestSimple_Reset(t *testing.T) {
	t.Parallel()

	prober := rpcclient.NewMockProber(nil)
	mq, err := oracle.NewSimple(alphabet.Reference, prober, nil)
	require.NoError(t, err)

	mq.Query(context.Background(), alphabet.NewWord("A"))
	require.NotZero(t, mq.MQCount())

	mq.Reset()
	require.Zero(t, mq.MQCount())
	require.Zero(t, mq.RPCCount())
}

func TestSimple_PanicsOnUnknownSymbol(t *testing.T) {
	t.Parallel()

	a, err := alphabet.New('A', 'T')
	require.NoError(t, err)
	prober := rpcclient.NewMockProber(nil)
	mq, err := oracle.NewSimple(a, prober, nil)
	require.NoError(t, err)

	require.Panics(t, func() {
		mq.Query(context.Background(), alphabet.NewWord("ATB"))
	})
}

func TestMedium_RejectsMAndRequiresOrderedSubsequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want bool
	}{
		{"ATB", true},
		{"CATCBC", true}, // interleaved A,T,B with C's between
		{"TAB", false},   // wrong order: T before A
		{"ATM", false},   // contains M
		{"AT", false},    // missing B
	}
	for _, tc := range tests {
		prober := rpcclient.NewMockProber(nil)
		mq, err := oracle.NewMedium(alphabet.Reference, prober, nil)
		require.NoError(t, err)
		got := mq.Query(context.Background(), alphabet.NewWord(tc.word))
		require.Equal(t, tc.want, got, "word %q", tc.word)
	}
}

func TestMedium_RejectsOnFirstProbeFailure(t *testing.T) {
	t.Parallel()

	prober := rpcclient.NewMockProber(map[alphabet.Symbol]bool{alphabet.A: false})
	mq, err := oracle.NewMedium(alphabet.Reference, prober, nil)
	require.NoError(t, err)

	require.False(t, mq.Query(context.Background(), alphabet.NewWord("ATB")))
}

func TestComplex_PhaseMachine(t *testing.T) {
	t.Parallel()

	mustComplex := func(t *testing.T) *oracle.Complex {
		t.Helper()
		mq, err := oracle.NewComplex(alphabet.Reference, rpcclient.NewMockProber(nil), nil)
		require.NoError(t, err)
		return mq
	}

	require.True(t, mustComplex(t).Query(context.Background(), alphabet.NewWord("ATB")), "ATB: 0->1->2->3")
	require.False(t, mustComplex(t).Query(context.Background(), alphabet.NewWord("M")), "M is always illegal")
	require.False(t, mustComplex(t).Query(context.Background(), alphabet.NewWord("")), "phase never reaches 3 on ε")
	require.True(t, mustComplex(t).Query(context.Background(), alphabet.NewWord("AATB")), "second A still legal while phase<2")
	require.False(t, mustComplex(t).Query(context.Background(), alphabet.NewWord("ATBC")), "C illegal once phase=3")
	require.True(t, mustComplex(t).Query(context.Background(), alphabet.NewWord("ACATB")), "C legal at phase 1, does not disturb the A/T/B progression")
	require.True(t, mustComplex(t).Query(context.Background(), alphabet.NewWord("ATBB")), "B's guard (phase>=2) still holds at phase=3, so a second B stays legal")
	require.False(t, mustComplex(t).Query(context.Background(), alphabet.NewWord("ATBA")), "A's guard (phase<2) excludes phase=3, so a trailing A is illegal")
}

func TestComplex_ProbeFailureRejectsEvenIfSyntacticallyLegal(t *testing.T) {
	t.Parallel()

	prober := rpcclient.NewMockProber(map[alphabet.Symbol]bool{alphabet.B: false})
	mq, err := oracle.NewComplex(alphabet.Reference, prober, nil)
	require.NoError(t, err)

	require.False(t, mq.Query(context.Background(), alphabet.NewWord("ATB")))
}
