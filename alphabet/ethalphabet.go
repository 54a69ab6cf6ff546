package alphabet

// The reference five-symbol alphabet used by every oracle variant and by
// cmd/rpclearn. Semantic classes, per spec §4.1: A=ACC, T=TXQ, B=BLK, C=CALL,
// M=META.
const (
	A Symbol = 'A' // ACC  — account balance probe
	T Symbol = 'T' // TXQ  — transaction/nonce probe
	B Symbol = 'B' // BLK  — bytecode probe
	C Symbol = 'C' // CALL — eth_call probe
	M Symbol = 'M' // META — fee-history probe, always illegal in the complex language
)

// DefaultAddress is the zero address used as the target of every probe, per
// spec §6.
const DefaultAddress = "0x0000000000000000000000000000000000000000"

// DefaultBlockTag is the block tag appended to every balance/nonce/code/call
// probe, per spec §6.
const DefaultBlockTag = "latest"

// RequestTemplate is the constant RPC shape bound to one Symbol: a JSON-RPC
// method name and its parameter vector. Templates are data, not code (spec
// §6): nothing in the oracle or learner packages branches on a Symbol's
// identity beyond looking up its RequestTemplate and, for the medium and
// complex oracles, their language rules (oracle package, not here).
type RequestTemplate struct {
	Method string
	Params []interface{}
}

// Templates is the constant Symbol → RequestTemplate table for the
// reference alphabet (spec §6). It is loaded once at package init and never
// mutated; rpcclient.Prober implementations read it by Symbol.
var Templates = map[Symbol]RequestTemplate{
	A: {Method: "eth_getBalance", Params: []interface{}{DefaultAddress, DefaultBlockTag}},
	T: {Method: "eth_getTransactionCount", Params: []interface{}{DefaultAddress, DefaultBlockTag}},
	B: {Method: "eth_getCode", Params: []interface{}{DefaultAddress, DefaultBlockTag}},
	C: {Method: "eth_call", Params: []interface{}{
		map[string]interface{}{"to": DefaultAddress, "data": "0x"},
		DefaultBlockTag,
	}},
	M: {Method: "eth_feeHistory", Params: []interface{}{"0x1", DefaultBlockTag, []interface{}{}}},
}

// Reference is the canonical Σ = {A, T, B, C, M} Alphabet, built once at
// init time. Oracle variants and cmd/rpclearn use this; the learner and
// table/tree packages never import it directly, since they are parametric
// in Σ per spec §4.1.
var Reference = mustReference()

func mustReference() *Alphabet {
	a, err := New(A, T, B, C, M)
	if err != nil {
		// Construction of a constant, known-good alphabet cannot fail;
		// a failure here means the constant table above was edited to
		// contain a duplicate, which is a programming error.
		panic(err)
	}
	return a
}
