package ttt

import (
	"context"
	"testing"

	"github.com/arrowstate/rpclearn/alphabet"
)

type wordSetQuerier map[string]bool

func (q wordSetQuerier) Query(_ context.Context, w alphabet.Word) bool {
	return q[w.Raw()]
}

func twoSymbolAlphabet(t *testing.T) *alphabet.Alphabet {
	t.Helper()
	a, err := alphabet.New('a', 'b')
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestNewTree_InitialTrueLeafIsFirstAcceptedSymbol(t *testing.T) {
	a := twoSymbolAlphabet(t)
	mq := wordSetQuerier{"b": true}
	ctx := context.Background()
	tr := newTree(ctx, a, mq)

	trueLeaf := tr.root.children[true]
	if trueLeaf.rep.String() != "b" {
		t.Fatalf("expected true-leaf rep %q, got %q", "b", trueLeaf.rep.String())
	}
}

func TestNewTree_FallsBackToEmptyRepWhenNoSingleSymbolAccepted(t *testing.T) {
	a := twoSymbolAlphabet(t)
	mq := wordSetQuerier{} // nothing accepted
	ctx := context.Background()
	tr := newTree(ctx, a, mq)

	trueLeaf := tr.root.children[true]
	if trueLeaf.rep.String() != "ε" {
		t.Fatalf("expected placeholder empty rep, got %q", trueLeaf.rep.String())
	}
}

func TestSplitLeaf_ReplacesNodeInPlace(t *testing.T) {
	a := twoSymbolAlphabet(t)
	mq := wordSetQuerier{"a": true}
	ctx := context.Background()
	tr := newTree(ctx, a, mq)

	falseLeaf := tr.root.children[false]
	if !falseLeaf.isLeaf {
		t.Fatal("expected the false child to start as a leaf")
	}

	// rep1="a" (true under discriminator ε since mq("a")=true), rep2="" (false)
	ok := tr.splitLeaf(ctx, falseLeaf, alphabet.NewWord("a"), alphabet.NewWord(""), alphabet.NewWord(""))
	if !ok {
		t.Fatal("split should have succeeded: rep1 and rep2 disagree on the empty discriminator")
	}

	// The same *DTNode pointer must now be internal: this is exactly what
	// "become" guarantees — every existing reference to falseLeaf observes
	// the split.
	if falseLeaf.isLeaf {
		t.Fatal("falseLeaf must have become an internal node in place")
	}
	if len(falseLeaf.children) != 2 {
		t.Fatalf("expected 2 children after split, got %d", len(falseLeaf.children))
	}
}

func TestSplitLeaf_FailsWhenDiscriminatorDoesNotSeparate(t *testing.T) {
	a := twoSymbolAlphabet(t)
	mq := wordSetQuerier{"a": true, "b": true} // both accepted: no separation on ε
	ctx := context.Background()
	tr := newTree(ctx, a, mq)

	leaf := newLeaf(alphabet.NewWord(""))
	ok := tr.splitLeaf(ctx, leaf, alphabet.NewWord("a"), alphabet.NewWord("b"), alphabet.NewWord(""))
	if ok {
		t.Fatal("split must fail when both reps agree on the discriminator")
	}
	if !leaf.isLeaf {
		t.Fatal("a failed split must not mutate the leaf")
	}
}

func TestBuildDFA_TotalOverEverySymbol(t *testing.T) {
	a := twoSymbolAlphabet(t)
	mq := wordSetQuerier{
		"":  true,
		"a": false,
		"b": true,
	}
	ctx := context.Background()
	tr := newTree(ctx, a, mq)

	dfa, err := tr.buildDFA(ctx)
	if err != nil {
		t.Fatalf("buildDFA failed: %v", err)
	}
	for _, s := range dfa.States() {
		for _, sym := range a.Symbols() {
			if _, ok := dfa.Delta(s, sym); !ok {
				t.Fatalf("state %q missing transition for symbol %q", s, sym.String())
			}
		}
	}
}
