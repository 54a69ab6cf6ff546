package eq

import "github.com/arrowstate/rpclearn/alphabet"

// ReferenceTemplates is the implementor-chosen template word list for the
// reference Σ = {A, T, B, C, M} alphabet (spec §4.3): short prefixes, the
// canonical accepting word ATB, near-accepting variants, and words with
// injected M/C. Grounded directly on original_source's equivalence.py
// TEMPLATES list, in the same order.
var ReferenceTemplates = wordsFromStrings(
	"ATB", "AATB", "ACATB",
	"A", "AT", "AB", "TAB", "ACB", "ATBC", "M",
	"BAT", "TBA", "BTA", "TATB", "ATBM", "ATBB",
	"AC", "CA", "CB", "TC", "BC",
)

func wordsFromStrings(ss ...string) []alphabet.Word {
	out := make([]alphabet.Word, len(ss))
	for i, s := range ss {
		out[i] = alphabet.NewWord(s)
	}
	return out
}
