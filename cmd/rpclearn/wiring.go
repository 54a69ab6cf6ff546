package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/arrowstate/rpclearn/alphabet"
	"github.com/arrowstate/rpclearn/eq"
	"github.com/arrowstate/rpclearn/oracle"
	"github.com/arrowstate/rpclearn/rpcclient"
)

// mqOracle is the subset of oracle.MQ that cmd/rpclearn needs directly,
// narrowed so buildOracle can return any of the three variants uniformly.
type mqOracle interface {
	eq.MembershipQuerier
	Reset()
	MQCount() uint64
	RPCCount() uint64
}

// buildOracle wires a rpcclient.HTTPClient and one oracle variant together
// over alphabet.Reference, per the --oracle flag.
func buildOracle(variant string, cfg config, log *logrus.Entry) (mqOracle, error) {
	prober := rpcclient.NewHTTPClient(cfg.Endpoint,
		rpcclient.WithTimeout(cfg.timeoutFor(variant)),
		rpcclient.WithLogger(log),
	)

	switch variant {
	case "simple":
		return oracle.NewSimple(alphabet.Reference, prober, log)
	case "medium":
		return oracle.NewMedium(alphabet.Reference, prober, log)
	case "complex":
		return oracle.NewComplex(alphabet.Reference, prober, log)
	default:
		return nil, fmt.Errorf("cmd/rpclearn: unknown oracle variant %q (want simple|medium|complex)", variant)
	}
}
