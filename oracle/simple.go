package oracle

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/arrowstate/rpclearn/alphabet"
	"github.com/arrowstate/rpclearn/rpcclient"
)

// Simple is the reference language: accept iff word is non-empty and every
// underlying RPC probe for its symbols succeeds, one probe per symbol in
// order, rejecting on the first failure (spec §4.2).
type Simple struct {
	*base
}

// NewSimple builds a Simple oracle over a, probing through prober. log may
// be nil.
func NewSimple(a *alphabet.Alphabet, prober rpcclient.Prober, log *logrus.Entry) (*Simple, error) {
	b, err := newBase(a, prober, log, evalSimple)
	if err != nil {
		return nil, err
	}
	return &Simple{base: b}, nil
}

func evalSimple(_ context.Context, word alphabet.Word, probe func(alphabet.Symbol) bool) bool {
	if len(word) == 0 {
		return false
	}
	for _, sym := range word {
		if !probe(sym) {
			return false
		}
	}
	return true
}
