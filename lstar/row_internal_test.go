package lstar

import "testing"

func TestRow_KeyReflectsContent(t *testing.T) {
	r1 := newRow(3)
	r1.set(0, true)
	r1.set(1, false)
	r1.set(2, true)

	r2 := newRow(3)
	r2.set(0, true)
	r2.set(1, false)
	r2.set(2, true)

	if r1.Key() != r2.Key() {
		t.Fatalf("rows with identical content must have equal keys: %q != %q", r1.Key(), r2.Key())
	}
	if !r1.equal(r2) {
		t.Fatalf("rows with identical content must compare equal")
	}
}

func TestRow_KeyDiffersOnDifferentContent(t *testing.T) {
	r1 := newRow(2)
	r1.set(0, true)
	r1.set(1, true)

	r2 := newRow(2)
	r2.set(0, true)
	r2.set(1, false)

	if r1.Key() == r2.Key() {
		t.Fatalf("rows with different content must have different keys")
	}
}

func TestRow_GrowsOnOutOfRangeSet(t *testing.T) {
	r := newRow(1)
	r.set(0, true)
	r.set(3, true) // grows the row to width 4

	if r.get(0) != true || r.get(3) != true {
		t.Fatalf("growth must preserve previously set bits and record the new one")
	}
	if r.get(1) != false || r.get(2) != false {
		t.Fatalf("newly grown-into bits default to false")
	}
}
