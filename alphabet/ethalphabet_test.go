package alphabet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arrowstate/rpclearn/alphabet"
)

func TestReferenceAlphabet(t *testing.T) {
	t.Parallel()

	require.Equal(t, 5, alphabet.Reference.Len())
	for _, sym := range []alphabet.Symbol{alphabet.A, alphabet.T, alphabet.B, alphabet.C, alphabet.M} {
		require.True(t, alphabet.Reference.Contains(sym))
	}
}

func TestTemplates_CoverEveryReferenceSymbol(t *testing.T) {
	t.Parallel()

	for _, sym := range alphabet.Reference.Symbols() {
		tmpl, ok := alphabet.Templates[sym]
		require.True(t, ok, "symbol %q has no RequestTemplate", sym.String())
		require.NotEmpty(t, tmpl.Method)
	}
}

func TestTemplates_ExactMethodBindings(t *testing.T) {
	t.Parallel()

	cases := map[alphabet.Symbol]string{
		alphabet.A: "eth_getBalance",
		alphabet.T: "eth_getTransactionCount",
		alphabet.B: "eth_getCode",
		alphabet.C: "eth_call",
		alphabet.M: "eth_feeHistory",
	}
	for sym, method := range cases {
		require.Equal(t, method, alphabet.Templates[sym].Method)
	}
}
