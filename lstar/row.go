package lstar

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Row is the observation-table row for one prefix: the vector of
// membership-query results over the current suffix set S, in S's order.
//
// Row identity only ever needs equality and a stable map key, never
// arithmetic, so a bitset.BitSet (one bit per suffix, set iff the cell is
// true) is a natural fit: it is exactly as wide as |S|, grows with it, and
// renders a canonical string cheaply. newRow sizes the bitsets to the
// current |S|; set reallocates both bitsets to the new width when it is
// given an index past the end, since |S| only ever grows monotonically
// within one table's lifetime.
type Row struct {
	bits  *bitset.BitSet // verdict per suffix index
	known *bitset.BitSet // whether that index has actually been queried
	len   uint
}

// newRow allocates a Row wide enough for n suffixes, all cells initially
// unknown.
func newRow(n int) *Row {
	return &Row{bits: bitset.New(uint(n)), known: bitset.New(uint(n)), len: uint(n)}
}

// set records the verdict for suffix index i, marking it known.
func (r *Row) set(i int, verdict bool) {
	if uint(i) >= r.len {
		growBits := bitset.New(uint(i) + 1)
		r.bits.Copy(growBits)
		r.bits = growBits
		growKnown := bitset.New(uint(i) + 1)
		r.known.Copy(growKnown)
		r.known = growKnown
		r.len = uint(i) + 1
	}
	if verdict {
		r.bits.Set(uint(i))
	} else {
		r.bits.Clear(uint(i))
	}
	r.known.Set(uint(i))
}

// get returns the verdict recorded for suffix index i.
func (r *Row) get(i int) bool {
	return r.bits.Test(uint(i))
}

// answered reports whether suffix index i has actually been queried, as
// opposed to merely falling within the row's current (possibly wider than
// answered) allocation.
func (r *Row) answered(i int) bool {
	return uint(i) < r.len && r.known.Test(uint(i))
}

// Key returns a canonical string identifying this Row's content: two Rows
// over the same suffix set S produce equal keys iff their cell vectors are
// equal. Key is what table code uses as a map key when grouping prefixes
// into equivalence classes (spec §9 "Row keys" — structural hashing and
// equality, without committing to one fixed representation).
//
// For the bitset sizes this package produces (one bit per suffix, and S
// rarely grows past a few dozen entries for the reference alphabet), the
// bitset's own word-compressed String() is already a canonical, comparable
// form; Key wraps it with the row's width so two rows of different width
// with the same low bits set never collide.
func (r *Row) Key() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(r.len), 10))
	b.WriteByte(':')
	b.WriteString(r.bits.String())
	return b.String()
}

// equal reports whether r and other hold the same verdicts over the same
// width. Used by consistency checks that compare two rows directly rather
// than via their Key.
func (r *Row) equal(other *Row) bool {
	if r.len != other.len {
		return false
	}
	return r.bits.Equal(other.bits)
}
