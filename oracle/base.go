package oracle

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/arrowstate/rpclearn/alphabet"
	"github.com/arrowstate/rpclearn/rpcclient"
)

// evalFunc is the variant-specific reference-language evaluator: given the
// word being queried, it issues whatever probes it needs (via probe) and
// returns the final verdict. It runs only on a cache miss.
type evalFunc func(ctx context.Context, word alphabet.Word, probe func(alphabet.Symbol) bool) bool

// base implements the cache/counter/probe machinery shared by Simple,
// Medium, and Complex (spec §4.2 "Caching" and "Reset"). It is not exported;
// each variant embeds it and supplies its own evalFunc.
type base struct {
	prober   rpcclient.Prober
	alphabet *alphabet.Alphabet
	log      *logrus.Entry
	eval     evalFunc

	cache    map[string]bool
	mqCount  uint64
	rpcCount uint64
}

func newBase(a *alphabet.Alphabet, prober rpcclient.Prober, log *logrus.Entry, eval evalFunc) (*base, error) {
	if a == nil {
		return nil, ErrNilAlphabet
	}
	if prober == nil {
		return nil, ErrNilProber
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &base{
		prober:   prober,
		alphabet: a,
		log:      log,
		eval:     eval,
		cache:    make(map[string]bool),
	}, nil
}

// Query implements the shared half of MQ.Query: cache lookup, alphabet
// validation, cache-miss counting, and cache population. The variant's
// evalFunc supplies the reference-language verdict.
func (b *base) Query(ctx context.Context, word alphabet.Word) bool {
	if err := b.alphabet.Validate(word); err != nil {
		// Spec §4.2: an unknown symbol is a programmer error and
		// terminates the run.
		b.log.WithField("word", word.String()).Panic("oracle: unknown symbol in word")
	}

	key := word.Raw()
	if v, hit := b.cache[key]; hit {
		return v
	}

	b.mqCount++

	probe := func(sym alphabet.Symbol) bool {
		b.rpcCount++
		ok, err := b.prober.Probe(ctx, sym)
		if err != nil {
			// A non-nil Probe error is a programmer error (rpcclient.Prober
			// contract), fatal like an unknown symbol.
			b.log.WithError(err).WithField("symbol", sym.String()).Panic("oracle: probe error")
		}
		return ok
	}

	result := b.eval(ctx, word, probe)
	b.cache[key] = result
	b.log.WithFields(logrus.Fields{"word": word.String(), "result": result}).Debug("oracle: membership query resolved")
	return result
}

// Reset implements MQ.Reset.
func (b *base) Reset() {
	b.cache = make(map[string]bool)
	b.mqCount = 0
	b.rpcCount = 0
}

// MQCount implements MQ.MQCount.
func (b *base) MQCount() uint64 { return b.mqCount }

// RPCCount implements MQ.RPCCount.
func (b *base) RPCCount() uint64 { return b.rpcCount }
