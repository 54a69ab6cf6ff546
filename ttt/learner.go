package ttt

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/arrowstate/rpclearn/alphabet"
	"github.com/arrowstate/rpclearn/automaton"
)

// MaxOuterRounds and MaxRefinements are the hard caps of spec §4.5
// "Bounds": reaching either returns the current best-effort hypothesis
// instead of looping forever against an oracle that never converges.
const (
	MaxOuterRounds = 300
	MaxRefinements = 80
)

// EquivalenceOracle is the narrow dependency a Learner needs from an
// equivalence oracle, identical in shape to lstar.EquivalenceOracle —
// declared separately so the two packages stay independent of one another,
// per spec §1's "implemented against a common oracle interface" framing,
// which names the membership/equivalence contracts, not a shared learner
// package.
type EquivalenceOracle interface {
	Search(ctx context.Context, hypothesis *automaton.DFA) (alphabet.Word, bool)
}

// Learner runs the TTT algorithm of spec §4.5: build a hypothesis from the
// current discrimination tree, submit it to the equivalence oracle, and
// refine the tree on any counter-example, until EQ reports convergence or
// one of the hard caps is reached.
type Learner struct {
	alphabet *alphabet.Alphabet
	eqOracle EquivalenceOracle
	tree     *tree
	log      *logrus.Entry
}

// New builds a Learner over a, querying mq for membership verdicts and
// eqOracle for equivalence counter-examples. log may be nil. Constructing a
// Learner immediately builds the initial discrimination tree (spec §4.5
// "Initial tree"), which itself issues up to |Σ| membership queries.
func New(ctx context.Context, a *alphabet.Alphabet, mq MembershipQuerier, eqOracle EquivalenceOracle, log *logrus.Entry) (*Learner, error) {
	if a == nil {
		return nil, ErrNilAlphabet
	}
	if mq == nil {
		return nil, ErrNilQuerier
	}
	if eqOracle == nil {
		return nil, ErrNilEquivalenceOracle
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Learner{
		alphabet: a,
		eqOracle: eqOracle,
		tree:     newTree(ctx, a, mq),
		log:      log,
	}, nil
}

// Learn runs the algorithm to completion. It returns a nil hypothesis only
// when ctx is done or a round's hypothesis cannot be built; otherwise it
// returns the learned hypothesis, and the returned error is nil only on
// genuine EQ-reported convergence. On a cap or refinement-exhaustion
// condition it returns the
// current best-effort hypothesis together with a non-nil warning built from
// the sentinel errors in errors.go, combined via multierr so a future
// caller comparing runs can test membership with errors.Is against any of
// them.
func (l *Learner) Learn(ctx context.Context) (*automaton.DFA, error) {
	refinements := 0

	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if round > MaxOuterRounds {
			l.log.WithField("round", round).Warn("ttt: outer round cap reached")
			hypothesis, buildErr := l.tree.buildDFA(ctx)
			return hypothesis, multierr.Append(buildErr, ErrRoundCapReached)
		}

		hypothesis, err := l.tree.buildDFA(ctx)
		if err != nil {
			return nil, err
		}

		ce, found := l.eqOracle.Search(ctx, hypothesis)
		if !found {
			l.log.WithField("round", round).WithField("states", len(hypothesis.States())).
				Info("ttt: converged")
			return hypothesis, nil
		}

		l.log.WithField("round", round).WithField("counterexample", ce.String()).
			Debug("ttt: refining on counter-example")

		if ok := l.tree.refine(ctx, ce); !ok {
			l.log.Warn("ttt: refinement exhausted")
			return hypothesis, ErrRefinementExhausted
		}

		refinements++
		if refinements >= MaxRefinements {
			l.log.WithField("refinements", refinements).Warn("ttt: refinement cap reached")
			rebuilt, buildErr := l.tree.buildDFA(ctx)
			return rebuilt, multierr.Append(buildErr, ErrRefinementCapReached)
		}
	}
}
