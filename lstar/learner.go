package lstar

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/arrowstate/rpclearn/alphabet"
	"github.com/arrowstate/rpclearn/automaton"
)

// EquivalenceOracle is the narrow dependency a Learner needs from an
// equivalence oracle: search a hypothesis for a counter-example. Declared
// locally (mirroring eq.MembershipQuerier's pattern) rather than importing
// package eq's concrete Oracle type, so any equivalence oracle — including
// eq.Oracle or a test double — can drive a Learner.
type EquivalenceOracle interface {
	Search(ctx context.Context, hypothesis *automaton.DFA) (alphabet.Word, bool)
}

// Learner runs the table-based L* algorithm of spec §4.4 to a fixed point:
// alternate closing/making-consistent the observation table, build a
// hypothesis, and submit it to the equivalence oracle, absorbing any
// counter-example as new prefixes, until the oracle reports no
// disagreement.
//
// Unlike Learner in package ttt, L* carries no round cap here: spec.md
// places no bound on L* (only TTT's refinement count is capped), and each
// outer round strictly grows the number of distinct observation-table rows,
// which is itself bounded by the (finite, though unknown in advance) target
// automaton's state count — so the loop's own termination argument already
// rules out non-termination against a genuine DFA-shaped membership oracle.
type Learner struct {
	alphabet *alphabet.Alphabet
	mq       MembershipQuerier
	eqOracle EquivalenceOracle
	table    *ObservationTable
	log      *logrus.Entry
}

// New builds a Learner over a, querying mq for membership verdicts and
// eqOracle for equivalence counter-examples. log may be nil.
func New(a *alphabet.Alphabet, mq MembershipQuerier, eqOracle EquivalenceOracle, log *logrus.Entry) (*Learner, error) {
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
		mq:       mq,
		eqOracle: eqOracle,
		table:    newObservationTable(a, mq, log),
		log:      log,
	}, nil
}

// Learn runs the algorithm to completion and returns the learned DFA. It
// returns only on success or on ctx cancellation; there is no other failure
// mode once the Learner has been constructed (buildHypothesis can only fail
// on an inconsistent/incomplete table, which the closed/consistent loop
// below always resolves before calling it).
func (l *Learner) Learn(ctx context.Context) (*automaton.DFA, error) {
	l.table.refill(ctx)

	round := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		round++

		for {
			closedOK, wp, wa := l.table.closed()
			if !closedOK {
				l.table.addPrefix(wp.Append(wa))
				l.table.refill(ctx)
				continue
			}
			consistentOK, ws := l.table.consistent()
			if !consistentOK {
				l.table.addSuffix(ws)
				l.table.refill(ctx)
				continue
			}
			break
		}

		hypothesis, err := l.table.buildHypothesis()
		if err != nil {
			return nil, err
		}

		ce, found := l.eqOracle.Search(ctx, hypothesis)
		if !found {
			l.log.WithField("round", round).WithField("states", len(hypothesis.States())).
				Info("lstar: converged")
			return hypothesis, nil
		}

		l.log.WithField("round", round).WithField("counterexample", ce.String()).
			Debug("lstar: absorbing counter-example")
		l.table.addCounterexample(ctx, ce)
	}
}
