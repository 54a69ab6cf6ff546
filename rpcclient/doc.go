// Package rpcclient implements the concrete JSON-RPC transport the oracle
// layer probes through: an HTTP POST of a JSON-RPC 2.0 request to a
// configured endpoint, per spec §6.
//
// This is the one package in the module that reaches for
// github.com/pkg/errors instead of the stdlib errors/fmt.Errorf convention
// used everywhere else — grounded on augustbleeds-libocr's direct dependency
// on pkg/errors. It wraps only ErrUnboundSymbol; transport and protocol
// failures are not returned as errors but collapse to ok=false. Every other
// package stays with sentinel errors and %w, per DESIGN.md.
package rpcclient
