package lstar

import "errors"

// Sentinel errors for the lstar package.
var (
	// ErrNilAlphabet indicates a Learner was constructed with a nil
	// alphabet.Alphabet.
	ErrNilAlphabet = errors.New("lstar: alphabet is nil")

	// ErrNilQuerier indicates a Learner was constructed with a nil
	// MembershipQuerier.
	ErrNilQuerier = errors.New("lstar: membership querier is nil")

	// ErrNilEquivalenceOracle indicates a Learner was constructed with a
	// nil EquivalenceOracle.
	ErrNilEquivalenceOracle = errors.New("lstar: equivalence oracle is nil")

	// ErrMissingCell indicates the table was asked for a cell that refill
	// should have populated but did not — a bug in refill's bookkeeping,
	// not a user-facing condition.
	ErrMissingCell = errors.New("lstar: missing observation table cell")
)
