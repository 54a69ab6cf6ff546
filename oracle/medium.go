package oracle

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/arrowstate/rpclearn/alphabet"
	"github.com/arrowstate/rpclearn/rpcclient"
)

// Medium is the reference language: same RPC rule as Simple (reject on
// first probe failure), plus reject if alphabet.M appears anywhere; accept
// iff all probes succeed AND the word contains the ordered subsequence
// A, T, B — symbols may be interleaved (spec §4.2).
type Medium struct {
	*base
}

// NewMedium builds a Medium oracle over a, probing through prober. log may
// be nil.
func NewMedium(a *alphabet.Alphabet, prober rpcclient.Prober, log *logrus.Entry) (*Medium, error) {
	b, err := newBase(a, prober, log, evalMedium)
	if err != nil {
		return nil, err
	}
	return &Medium{base: b}, nil
}

func evalMedium(_ context.Context, word alphabet.Word, probe func(alphabet.Symbol) bool) bool {
	progress := 0 // 0: none, 1: saw A, 2: saw A then T, 3: saw A then T then B
	for _, sym := range word {
		if sym == alphabet.M {
			return false
		}
		if !probe(sym) {
			return false
		}
		switch {
		case progress == 0 && sym == alphabet.A:
			progress = 1
		case progress == 1 && sym == alphabet.T:
			progress = 2
		case progress == 2 && sym == alphabet.B:
			progress = 3
		}
	}
	return progress == 3
}
