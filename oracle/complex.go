package oracle

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/arrowstate/rpclearn/alphabet"
	"github.com/arrowstate/rpclearn/rpcclient"
)

// Complex is the reference language: a purely syntactic four-phase grammar
// 0→1→2→3 over Σ, independent of whether the RPC probes actually succeed
// beyond counting them (spec §4.2):
//
//	M ⇒ reject
//	A ⇒ legal only when phase < 2; phase ← max(phase,1)
//	T ⇒ legal only when phase ≥ 1; phase ← max(phase,2)
//	B ⇒ legal only when phase ≥ 2; phase ← 3
//	C ⇒ legal only when phase ∈ {1,2}; phase unchanged
//
// Any illegal symbol rejects immediately. Accept iff phase = 3 at the end.
// Each symbol still triggers one RPC probe for honest cost accounting; a
// transport/protocol failure rejects the word even if the symbol was
// syntactically legal. Per spec §9, phase=3 does not freeze the grammar
// symmetrically: A and C's guards exclude phase=3, but T's (phase≥1) and
// B's (phase≥2) do not, so T and B both remain legal — and idempotent,
// phase stays 3 — on an already-accepting word. This asymmetry is
// preserved as stated, not "fixed".
type Complex struct {
	*base
}

// NewComplex builds a Complex oracle over a, probing through prober. log
// may be nil.
func NewComplex(a *alphabet.Alphabet, prober rpcclient.Prober, log *logrus.Entry) (*Complex, error) {
	b, err := newBase(a, prober, log, evalComplex)
	if err != nil {
		return nil, err
	}
	return &Complex{base: b}, nil
}

func evalComplex(_ context.Context, word alphabet.Word, probe func(alphabet.Symbol) bool) bool {
	phase := 0
	for _, sym := range word {
		switch sym {
		case alphabet.M:
			return false
		case alphabet.A:
			if phase >= 2 {
				return false
			}
			phase = max(phase, 1)
		case alphabet.T:
			if phase < 1 {
				return false
			}
			phase = max(phase, 2)
		case alphabet.B:
			if phase < 2 {
				return false
			}
			phase = 3
		case alphabet.C:
			if phase != 1 && phase != 2 {
				return false
			}
			// phase unchanged
		default:
			// Reachable only for a Σ that extends the reference
			// alphabet with a symbol this variant has no rule for;
			// treat it the same as an illegal transition rather than
			// silently accepting it.
			return false
		}

		if !probe(sym) {
			return false
		}
	}
	return phase == 3
}
