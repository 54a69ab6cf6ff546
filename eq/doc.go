// Package eq implements the equivalence oracle EQ(hypothesis) → word | none
// of spec §4.3: a two-phase, deterministic-up-to-seed search for a word on
// which a hypothesis DFA disagrees with the membership oracle.
//
// Phase one checks a small ordered list of template words chosen to exercise
// corner cases; phase two draws up to 400 random words of length 1..10. Both
// phases reuse the membership oracle, including its cache, by calling the
// same MembershipQuerier the learner is driving. Per spec §9, this is a
// probabilistic under-approximation of equivalence, not a soundness
// guarantee — document it as such at call sites, don't silently treat "no
// counter-example" as "proven equivalent".
package eq
