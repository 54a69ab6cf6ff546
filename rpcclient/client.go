package rpcclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/arrowstate/rpclearn/alphabet"
)

// DefaultEndpoint is the fallback JSON-RPC endpoint, per spec §6.
const DefaultEndpoint = "http://127.0.0.1:8545"

// ErrUnboundSymbol indicates Probe was asked to probe a Symbol with no
// RequestTemplate in alphabet.Templates.
var ErrUnboundSymbol = errors.New("rpcclient: symbol has no request template")

// Prober is the contract a membership-query probe calls once per Symbol: it
// performs whatever underlying work realizes that Symbol's RPC request and
// reports success or failure. Oracle implementations depend only on this
// interface, never on *HTTPClient directly, so tests can substitute a
// fake (see MockProber) without a network.
//
// Probe must never panic on a transport/protocol failure — it returns
// ok=false instead, per spec §4.2/§7. A non-nil error is reserved for
// genuine programmer errors (an unbound Symbol); callers should treat it as
// fatal, consistent with the alphabet package's ErrUnknownSymbol contract.
type Prober interface {
	Probe(ctx context.Context, sym alphabet.Symbol) (ok bool, err error)
}

// request is the JSON-RPC 2.0 envelope sent for every probe.
type request struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

// HTTPClient is the reference Prober: HTTP POST of a JSON-RPC 2.0 request to
// a configured endpoint. A probe is successful iff the HTTP call returns
// within the timeout, the body parses as JSON, and the parsed object has no
// "error" key (spec §6).
type HTTPClient struct {
	endpoint string
	timeout  time.Duration
	http     *http.Client
	log      *logrus.Entry
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout overrides the per-probe timeout. Spec §5 suggests 3-5 seconds;
// callers pick the value appropriate to their oracle variant.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

// WithLogger attaches a structured logger; nil is a no-op, leaving the
// default logger (logrus's standard logger) in place.
func WithLogger(log *logrus.Entry) Option {
	return func(c *HTTPClient) {
		if log != nil {
			c.log = log
		}
	}
}

// WithHTTPClient overrides the underlying *http.Client, e.g. to inject a
// transport with custom TLS settings or to point at a test server.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) {
		if h != nil {
			c.http = h
		}
	}
}

// NewHTTPClient builds an HTTPClient against endpoint (DefaultEndpoint if
// empty) with the given options applied left-to-right.
func NewHTTPClient(endpoint string, opts ...Option) *HTTPClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &HTTPClient{
		endpoint: endpoint,
		timeout:  3 * time.Second,
		http:     &http.Client{},
		log:      logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Probe issues the one JSON-RPC request bound to sym (spec §6) and reports
// whether it succeeded. Every failure mode — context deadline, connection
// refused, non-JSON body, or a JSON-RPC "error" member — collapses to
// ok=false; only an unbound Symbol (not in alphabet.Templates) returns a
// non-nil error, since that is a configuration/programmer error rather than
// a transport outcome.
func (c *HTTPClient) Probe(ctx context.Context, sym alphabet.Symbol) (bool, error) {
	tmpl, ok := alphabet.Templates[sym]
	if !ok {
		return false, pkgerrors.Wrapf(ErrUnboundSymbol, "symbol %q", sym.String())
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		Method:  tmpl.Method,
		Params:  tmpl.Params,
		ID:      1,
	})
	if err != nil {
		// Marshaling a constant template can't fail in practice; treat as a
		// failed probe rather than propagating, to keep Probe's only error
		// return reserved for ErrUnboundSymbol.
		c.log.WithError(err).Warn("rpcclient: failed to marshal request")
		return false, nil
	}

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		c.log.WithError(err).Warn("rpcclient: failed to build request")
		return false, nil
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.WithFields(logrus.Fields{"symbol": sym.String(), "method": tmpl.Method}).
			WithError(err).Debug("rpcclient: probe transport failure")
		return false, nil
	}
	defer resp.Body.Close()

	respBody, err := readAll(resp)
	if err != nil {
		c.log.WithError(err).Debug("rpcclient: probe read failure")
		return false, nil
	}

	if !gjson.ValidBytes(respBody) {
		c.log.Debug("rpcclient: probe returned non-JSON body")
		return false, nil
	}
	if gjson.GetBytes(respBody, "error").Exists() {
		c.log.WithField("symbol", sym.String()).Debug("rpcclient: probe returned protocol error")
		return false, nil
	}

	return true, nil
}
