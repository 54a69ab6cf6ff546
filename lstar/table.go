package lstar

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/arrowstate/rpclearn/alphabet"
	"github.com/arrowstate/rpclearn/automaton"
)

// MembershipQuerier is the narrow dependency an ObservationTable needs: a
// single Query method, matching the pattern already used by eq.Oracle so
// any oracle.MQ implementation (or a test double) satisfies it without an
// import of package oracle.
type MembershipQuerier interface {
	Query(ctx context.Context, word alphabet.Word) bool
}

// ObservationTable is the L* observation table of spec §4.4: a prefix set P
// (closed under one-symbol extension conceptually, via P·Σ below), a suffix
// set S, and a cell function T: (P ∪ P·Σ) × S → bool populated by
// membership queries.
//
// Cells are keyed by raw word strings rather than Word values directly so
// the same cell can be found regardless of which Word slice produced it;
// alphabet.Word.Raw is the canonical string form for that purpose.
type ObservationTable struct {
	alphabet *alphabet.Alphabet
	mq       MembershipQuerier
	log      *logrus.Entry

	prefixes   []alphabet.Word
	prefixSeen map[string]int // raw word -> index into prefixes

	suffixes   []alphabet.Word
	suffixSeen map[string]int // raw word -> index into suffixes

	// rows holds one Row per prefix (by raw word), covering both P and the
	// one-symbol extensions P·Σ; rows grows lazily as refill encounters new
	// extensions.
	rows map[string]*Row
}

// newObservationTable builds an empty table seeded with P = {ε} and
// S = {ε}, per spec §4.4's initialization step.
func newObservationTable(a *alphabet.Alphabet, mq MembershipQuerier, log *logrus.Entry) *ObservationTable {
	t := &ObservationTable{
		alphabet:   a,
		mq:         mq,
		log:        log,
		prefixSeen: make(map[string]int),
		suffixSeen: make(map[string]int),
		rows:       make(map[string]*Row),
	}
	t.addPrefix(alphabet.NewWord(""))
	t.addSuffix(alphabet.NewWord(""))
	return t
}

// addPrefix registers p in P if not already present. Idempotent.
func (t *ObservationTable) addPrefix(p alphabet.Word) {
	key := p.Raw()
	if _, ok := t.prefixSeen[key]; ok {
		return
	}
	t.prefixSeen[key] = len(t.prefixes)
	t.prefixes = append(t.prefixes, p)
}

// addSuffix registers s in S if not already present. Idempotent. Growing S
// widens every existing Row by one bit at the next refill.
func (t *ObservationTable) addSuffix(s alphabet.Word) {
	key := s.Raw()
	if _, ok := t.suffixSeen[key]; ok {
		return
	}
	t.suffixSeen[key] = len(t.suffixes)
	t.suffixes = append(t.suffixes, s)
}

// rowWords returns every word the table needs a Row for: P itself and every
// one-symbol extension p·a for p in P, a in Σ. This is exactly P ∪ P·Σ from
// spec §4.4.
func (t *ObservationTable) rowWords() []alphabet.Word {
	symbols := t.alphabet.Symbols()
	out := make([]alphabet.Word, 0, len(t.prefixes)*(1+len(symbols)))
	out = append(out, t.prefixes...)
	for _, p := range t.prefixes {
		for _, a := range symbols {
			out = append(out, p.Append(a))
		}
	}
	return out
}

// refill issues every membership query the current P, S imply but have not
// yet been answered, filling in rows for P ∪ P·Σ over all of S. refill is
// idempotent: calling it repeatedly after P or S grow only issues queries
// for the newly implied cells, since existing Row bits are left untouched
// and Row.set only ever widens, never shrinks.
func (t *ObservationTable) refill(ctx context.Context) {
	for _, w := range t.rowWords() {
		key := w.Raw()
		row, ok := t.rows[key]
		if !ok {
			row = newRow(len(t.suffixes))
			t.rows[key] = row
		}
		for i, s := range t.suffixes {
			if row.answered(i) {
				continue
			}
			verdict := t.mq.Query(ctx, w.Concat(s))
			row.set(i, verdict)
		}
	}
}

// row returns the Row for word w, which must already have been populated by
// refill (true for every word a learner derives from P/S bookkeeping).
func (t *ObservationTable) row(w alphabet.Word) *Row {
	return t.rows[w.Raw()]
}

// closed reports whether every row of P·Σ equals some row of P (spec §4.4).
// On failure it returns the witnessing prefix/symbol pair: the first p in P
// (insertion order) and a in Σ (fixed alphabet order) such that row(p·a)
// matches no row(p') for p' in P.
func (t *ObservationTable) closed() (ok bool, witnessPrefix alphabet.Word, witnessSymbol alphabet.Symbol) {
	pRowKeys := make(map[string]struct{}, len(t.prefixes))
	for _, p := range t.prefixes {
		pRowKeys[t.row(p).Key()] = struct{}{}
	}
	for _, p := range t.prefixes {
		for _, a := range t.alphabet.Symbols() {
			ext := p.Append(a)
			if _, found := pRowKeys[t.row(ext).Key()]; !found {
				return false, p, a
			}
		}
	}
	return true, nil, 0
}

// consistent reports whether any two prefixes with equal rows remain equal
// after extension by every symbol (spec §4.4). On failure it returns a
// distinguishing suffix a·s built from the first offending symbol a and
// suffix s found, which the caller adds to S.
func (t *ObservationTable) consistent() (ok bool, witnessSuffix alphabet.Word) {
	for i := 0; i < len(t.prefixes); i++ {
		for j := i + 1; j < len(t.prefixes); j++ {
			p1, p2 := t.prefixes[i], t.prefixes[j]
			if !t.row(p1).equal(t.row(p2)) {
				continue
			}
			for _, a := range t.alphabet.Symbols() {
				r1, r2 := t.row(p1.Append(a)), t.row(p2.Append(a))
				for k, s := range t.suffixes {
					if r1.get(k) != r2.get(k) {
						return false, alphabet.Word{a}.Concat(s)
					}
				}
			}
		}
	}
	return true, nil
}

// addCounterexample absorbs a counter-example word ce returned by the
// equivalence oracle: every prefix ce[:i] for i = 1..len(ce) is added to P
// (spec §4.4's "add every prefix of the counter-example"), then the table is
// refilled once so the new rows are populated before the next closed/
// consistent check.
func (t *ObservationTable) addCounterexample(ctx context.Context, ce alphabet.Word) {
	for _, p := range ce.Prefixes() {
		t.addPrefix(p)
	}
	t.refill(ctx)
}

// buildHypothesis constructs the DFA implied by the current table: one
// state per distinct row among P, named by that row's canonical Key; start
// state is row(ε); a state is accepting iff its representative prefix's row
// says ε is accepted; δ(row(p), a) = row(p·a) (spec §4.4's "hypothesis
// construction" step).
func (t *ObservationTable) buildHypothesis() (*automaton.DFA, error) {
	b, err := automaton.NewBuilder(t.alphabet)
	if err != nil {
		return nil, err
	}

	// Pick one representative prefix per distinct row key, in first-seen
	// (insertion) order, so state identities are stable across calls given
	// the same table contents.
	repForKey := make(map[string]alphabet.Word)
	var keysInOrder []string
	for _, p := range t.prefixes {
		key := t.row(p).Key()
		if _, ok := repForKey[key]; !ok {
			repForKey[key] = p
			keysInOrder = append(keysInOrder, key)
		}
	}
	sort.Strings(keysInOrder) // deterministic DOT/log ordering; state identity is the key itself, not this order

	emptyKey := t.row(alphabet.NewWord("")).Key()
	for _, key := range keysInOrder {
		state := automaton.State(key)
		b.AddState(state)
		rep := repForKey[key]
		if t.row(rep).get(t.suffixSeen[""]) {
			b.SetAccepting(state)
		}
		for _, a := range t.alphabet.Symbols() {
			nextKey := t.row(rep.Append(a)).Key()
			b.AddTransition(state, a, automaton.State(nextKey))
		}
	}
	b.SetStart(automaton.State(emptyKey))

	return b.Build()
}
