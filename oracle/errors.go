package oracle

import "errors"

// Sentinel errors for the oracle package.
var (
	// ErrNilProber indicates an oracle was constructed with a nil
	// rpcclient.Prober.
	ErrNilProber = errors.New("oracle: prober is nil")

	// ErrNilAlphabet indicates an oracle was constructed with a nil
	// alphabet.Alphabet.
	ErrNilAlphabet = errors.New("oracle: alphabet is nil")
)
