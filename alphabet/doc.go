// Package alphabet defines the fixed finite symbol set Σ used throughout
// active learning, and the constant binding from each abstract Symbol to a
// concrete JSON-RPC request template.
//
// The core learning and oracle packages are parametric in Σ: they accept an
// *Alphabet (an ordered set of Symbol) and never assume the five-symbol
// {A, T, B, C, M} set baked in here. That set, and its RPC bindings, is the
// data used by the reference oracle variants and the cmd/rpclearn host; it
// lives in this package only because something has to own it, and a
// constant table is the simplest thing that can.
package alphabet
