package ttt

import "errors"

// Sentinel errors for the ttt package.
var (
	// ErrNilAlphabet indicates a Learner was constructed with a nil
	// alphabet.Alphabet.
	ErrNilAlphabet = errors.New("ttt: alphabet is nil")

	// ErrNilQuerier indicates a Learner was constructed with a nil
	// MembershipQuerier.
	ErrNilQuerier = errors.New("ttt: membership querier is nil")

	// ErrNilEquivalenceOracle indicates a Learner was constructed with a
	// nil EquivalenceOracle.
	ErrNilEquivalenceOracle = errors.New("ttt: equivalence oracle is nil")

	// ErrRefinementExhausted is a warning-grade condition (spec §9): refine
	// found no discriminator — neither a one-step nor a suffix split —
	// that separates the counter-example's prefix from its leaf's
	// representative. Learn returns its current best-effort hypothesis
	// alongside this error rather than failing the run.
	ErrRefinementExhausted = errors.New("ttt: refinement exhausted, no separating discriminator found")

	// ErrRoundCapReached is a warning-grade condition: the outer loop hit
	// its hard round cap (spec §4.5 "Bounds") before EQ reported
	// convergence. Learn returns its current hypothesis alongside this
	// error.
	ErrRoundCapReached = errors.New("ttt: outer round cap reached")

	// ErrRefinementCapReached is a warning-grade condition: the number of
	// successful splits hit its hard cap (spec §4.5 "Bounds") before EQ
	// reported convergence. Learn returns its current hypothesis alongside
	// this error.
	ErrRefinementCapReached = errors.New("ttt: refinement cap reached")
)
