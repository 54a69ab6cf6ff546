package eq

import "errors"

// Sentinel errors for the eq package.
var (
	// ErrNilQuerier indicates an Oracle was constructed with a nil
	// MembershipQuerier.
	ErrNilQuerier = errors.New("eq: membership querier is nil")

	// ErrNilAlphabet indicates an Oracle was constructed with a nil
	// alphabet.Alphabet.
	ErrNilAlphabet = errors.New("eq: alphabet is nil")
)
