package eq

import (
	"context"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/arrowstate/rpclearn/alphabet"
	"github.com/arrowstate/rpclearn/automaton"
)

// DefaultSeed is the equivalence oracle's fixed random seed, set once at
// construction per spec §5/§9; expose a different seed via WithSeed when a
// caller wants an independent random stream.
const DefaultSeed = 0

// DefaultMaxRandomWords is the cap on phase-two random draws (spec §4.3).
const DefaultMaxRandomWords = 400

// DefaultMinWordLen and DefaultMaxWordLen bound the length of phase-two
// random words (spec §4.3: lengths uniform in [1,10]).
const (
	DefaultMinWordLen = 1
	DefaultMaxWordLen = 10
)

// MembershipQuerier is the subset of oracle.MQ the equivalence oracle
// depends on: a single Query method. Depending on this narrow interface
// rather than importing package oracle keeps eq usable against any
// membership oracle a caller wants to plug in, including a test double.
type MembershipQuerier interface {
	Query(ctx context.Context, word alphabet.Word) bool
}

// Oracle is the reference equivalence oracle of spec §4.3.
type Oracle struct {
	mq        MembershipQuerier
	alphabet  *alphabet.Alphabet
	log       *logrus.Entry
	rng       *rand.Rand
	templates []alphabet.Word
	maxRandom int
	minLen    int
	maxLen    int
}

// Option configures an Oracle.
type Option func(*Oracle)

// WithSeed overrides DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *Oracle) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithTemplates overrides the template word list. The reference list is
// eq.ReferenceTemplates.
func WithTemplates(templates []alphabet.Word) Option {
	return func(o *Oracle) { o.templates = templates }
}

// WithMaxRandomWords overrides DefaultMaxRandomWords.
func WithMaxRandomWords(n int) Option {
	return func(o *Oracle) { o.maxRandom = n }
}

// WithWordLenRange overrides the [min,max] random-word length range.
func WithWordLenRange(minLen, maxLen int) Option {
	return func(o *Oracle) { o.minLen, o.maxLen = minLen, maxLen }
}

// WithLogger attaches a structured logger; nil is a no-op.
func WithLogger(log *logrus.Entry) Option {
	return func(o *Oracle) {
		if log != nil {
			o.log = log
		}
	}
}

// New builds an Oracle over a, querying mq for membership verdicts, with
// DefaultSeed, eq.ReferenceTemplates, DefaultMaxRandomWords and the default
// word-length range, each overridable via opts.
func New(a *alphabet.Alphabet, mq MembershipQuerier, opts ...Option) (*Oracle, error) {
	if a == nil {
		return nil, ErrNilAlphabet
	}
	if mq == nil {
		return nil, ErrNilQuerier
	}
	o := &Oracle{
		mq:        mq,
		alphabet:  a,
		log:       logrus.NewEntry(logrus.StandardLogger()),
		rng:       rand.New(rand.NewSource(DefaultSeed)),
		templates: ReferenceTemplates,
		maxRandom: DefaultMaxRandomWords,
		minLen:    DefaultMinWordLen,
		maxLen:    DefaultMaxWordLen,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Search implements EQ(hypothesis) → word | none (spec §4.3): it evaluates
// the template list in order, then up to maxRandom random words, returning
// the first word on which hypothesis and the membership oracle disagree.
// The second return value is false when no disagreement was found in
// either phase.
func (o *Oracle) Search(ctx context.Context, hypothesis *automaton.DFA) (alphabet.Word, bool) {
	for _, w := range o.templates {
		if o.disagrees(ctx, hypothesis, w) {
			o.log.WithField("word", w.String()).Debug("eq: template counter-example")
			return w, true
		}
	}

	symbols := o.alphabet.Symbols()
	span := o.maxLen - o.minLen + 1
	for i := 0; i < o.maxRandom; i++ {
		length := o.minLen
		if span > 0 {
			length += o.rng.Intn(span)
		}
		w := make(alphabet.Word, length)
		for j := range w {
			w[j] = symbols[o.rng.Intn(len(symbols))]
		}
		if o.disagrees(ctx, hypothesis, w) {
			o.log.WithField("word", w.String()).Debug("eq: random counter-example")
			return w, true
		}
	}

	return nil, false
}

func (o *Oracle) disagrees(ctx context.Context, hypothesis *automaton.DFA, w alphabet.Word) bool {
	return hypothesis.Accepts(w) != o.mq.Query(ctx, w)
}
