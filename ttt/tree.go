package ttt

import (
	"context"

	"github.com/arrowstate/rpclearn/alphabet"
	"github.com/arrowstate/rpclearn/automaton"
)

// MembershipQuerier is the narrow dependency a tree needs: a single Query
// method, matching the pattern used by lstar.MembershipQuerier and
// eq.MembershipQuerier so any oracle.MQ (or test double) works here without
// importing package oracle.
type MembershipQuerier interface {
	Query(ctx context.Context, word alphabet.Word) bool
}

// tree is the discrimination tree plus its bookkeeping: the leaf→access-word
// map (spec §4.5 "State") and an internal MQ cache keyed on the queried
// word's raw symbol sequence, distinct from any cache the underlying oracle
// keeps — the tree memoizes at the granularity of whole sift/refine probes.
type tree struct {
	alphabet *alphabet.Alphabet
	mq       MembershipQuerier

	root   *DTNode
	leaves map[*DTNode]struct{} // set of current leaf nodes, for buildDFA's state enumeration

	cache map[string]bool
}

// newTree builds the initial tree of spec §4.5 "Initial tree": a root
// internal node with discriminator ε, a true-child leaf whose rep is the
// first single-symbol word accepted by MQ (scanning Σ in fixed order, or ε
// as a placeholder if none is accepted), and a false-child leaf with rep =
// ε.
func newTree(ctx context.Context, a *alphabet.Alphabet, mq MembershipQuerier) *tree {
	t := &tree{
		alphabet: a,
		mq:       mq,
		leaves:   make(map[*DTNode]struct{}),
		cache:    make(map[string]bool),
	}

	trueRep := alphabet.NewWord("")
	for _, sym := range a.Symbols() {
		w := alphabet.Word{sym}
		if t.query(ctx, w) {
			trueRep = w
			break
		}
	}

	trueLeaf := newLeaf(trueRep)
	falseLeaf := newLeaf(alphabet.NewWord(""))

	t.root = &DTNode{
		isLeaf:        false,
		discriminator: alphabet.NewWord(""),
		children:      map[bool]*DTNode{true: trueLeaf, false: falseLeaf},
	}
	t.leaves[trueLeaf] = struct{}{}
	t.leaves[falseLeaf] = struct{}{}

	return t
}

// query answers MQ(word), memoized in the tree's own cache.
func (t *tree) query(ctx context.Context, word alphabet.Word) bool {
	key := word.Raw()
	if v, ok := t.cache[key]; ok {
		return v
	}
	v := t.mq.Query(ctx, word)
	t.cache[key] = v
	return v
}

// sift walks w down from the root per spec §4.5 "Sift": at each internal
// node with discriminator d, query MQ(w·d) and descend to the child keyed
// by that boolean, creating an empty leaf with rep = ε on the fly if the
// child is missing. Returns the leaf reached.
func (t *tree) sift(ctx context.Context, w alphabet.Word) *DTNode {
	node := t.root
	for !node.isLeaf {
		b := t.query(ctx, w.Concat(node.discriminator))
		child, ok := node.children[b]
		if !ok {
			child = newLeaf(alphabet.NewWord(""))
			node.children[b] = child
			t.leaves[child] = struct{}{}
		}
		node = child
	}
	return node
}

// rep returns a leaf's representative access word.
func (t *tree) rep(leaf *DTNode) alphabet.Word {
	return leaf.rep
}

// refine implements spec §4.5's two-pass counter-example analysis: a
// one-step discriminator pass, then (only if the first finds nothing) a
// suffix-discriminator pass. Returns false if neither pass finds a
// separating split, per spec §9's "refinement exhaustion" condition.
func (t *tree) refine(ctx context.Context, ce alphabet.Word) bool {
	prefixes := ceAndPrefixes(ce)

	// Pass 1: one-step discriminator.
	for _, prefix := range prefixes {
		leaf := t.sift(ctx, prefix)
		repWord := t.rep(leaf)
		for _, a := range t.alphabet.Symbols() {
			lhs := t.query(ctx, prefix.Append(a))
			rhs := t.query(ctx, repWord.Append(a))
			if lhs != rhs {
				return t.splitLeaf(ctx, leaf, prefix, repWord, alphabet.Word{a})
			}
		}
	}

	// Pass 2: suffix discriminator.
	for i, prefix := range prefixes {
		leaf := t.sift(ctx, prefix)
		repWord := t.rep(leaf)
		suffix := ce[i:]
		if len(suffix) == 0 {
			continue
		}
		lhs := t.query(ctx, prefix.Concat(suffix))
		rhs := t.query(ctx, repWord.Concat(suffix))
		if lhs != rhs {
			return t.splitLeaf(ctx, leaf, prefix, repWord, suffix)
		}
	}

	return false
}

// ceAndPrefixes returns ce[0..i] for i = 0..len(ce), i.e. every prefix of
// ce including the empty prefix and ce itself — spec §4.5's refine loop
// ranges i from 0 through len(ce) inclusive.
func ceAndPrefixes(ce alphabet.Word) []alphabet.Word {
	out := make([]alphabet.Word, 0, len(ce)+1)
	out = append(out, alphabet.NewWord(""))
	for _, p := range ce.Prefixes() {
		out = append(out, p)
	}
	return out
}

// splitLeaf implements spec §4.5 "Split": requires MQ(rep1·d) ≠ MQ(rep2·d),
// builds a fresh internal node with discriminator d and two leaves for
// rep1/rep2, and replaces leaf in place via become so every existing
// pointer to it observes the split. Returns false (without mutating
// anything) if the discriminator does not actually separate the two reps.
func (t *tree) splitLeaf(ctx context.Context, leaf *DTNode, rep1, rep2, disc alphabet.Word) bool {
	b1 := t.query(ctx, rep1.Concat(disc))
	b2 := t.query(ctx, rep2.Concat(disc))
	if b1 == b2 {
		return false
	}

	child1 := newLeaf(rep1)
	child2 := newLeaf(rep2)

	replacement := &DTNode{
		isLeaf:        false,
		discriminator: disc,
		children:      map[bool]*DTNode{b1: child1, b2: child2},
	}

	delete(t.leaves, leaf)
	leaf.become(replacement)
	t.leaves[child1] = struct{}{}
	t.leaves[child2] = struct{}{}

	return true
}

// buildDFA implements spec §4.5 "Build DFA": states are the reps of
// currently reachable leaves plus the empty word; δ(s,a) = rep(sift(s·a));
// a state is accepting iff MQ(rep)=true. A second closure pass adds any
// newly discovered rep as its own state with its own transitions, so every
// transition target ends up total before Build is called.
func (t *tree) buildDFA(ctx context.Context) (*automaton.DFA, error) {
	b, err := automaton.NewBuilder(t.alphabet)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]alphabet.Word)
	var order []string
	addState := func(w alphabet.Word) {
		key := w.Raw()
		if _, ok := seen[key]; !ok {
			seen[key] = w
			order = append(order, key)
		}
	}

	for leaf := range t.leaves {
		addState(t.rep(leaf))
	}
	addState(alphabet.NewWord(""))

	// Closure pass: transitions may discover reps not yet in `seen`; keep
	// processing newly discovered states until none remain, exactly spec
	// §4.5's "one more closure pass (bounded)" — bounded here by the
	// discrimination tree's own finite leaf count, since sift never mints a
	// rep outside the tree's existing leaves.
	for i := 0; i < len(order); i++ {
		key := order[i]
		w := seen[key]
		for _, a := range t.alphabet.Symbols() {
			next := t.rep(t.sift(ctx, w.Append(a)))
			addState(next)
		}
	}

	start := alphabet.NewWord("")
	b.SetStart(automaton.State(start.Raw()))

	for _, key := range order {
		w := seen[key]
		state := automaton.State(key)
		b.AddState(state)
		if t.query(ctx, w) {
			b.SetAccepting(state)
		}
		for _, a := range t.alphabet.Symbols() {
			next := t.rep(t.sift(ctx, w.Append(a)))
			b.AddTransition(state, a, automaton.State(next.Raw()))
		}
	}

	return b.Build()
}
