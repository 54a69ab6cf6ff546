// Package automaton defines DFA, the immutable hypothesis automaton emitted
// at the end of every L*/TTT learning round (spec §3, §4.6).
//
// A DFA is a plain value: a set of opaque state identities, a start state, an
// accepting set, and a total transition map. It is safe to share by
// reference with the equivalence oracle without risk of the learner's next
// round mutating it out from under a concurrent reader, because nothing
// here ever mutates a DFA after Build returns it — a new round builds a new
// DFA instead.
package automaton
