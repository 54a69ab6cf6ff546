package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newRootCmd assembles the cobra.Command tree of spec §8: learn, compare,
// serve-metrics. Each subcommand loads its own loadConfig()/eq.New()
// dependencies rather than sharing persistent state, since nothing here
// outlives one invocation.
func newRootCmd() *cobra.Command {
	log := logrus.NewEntry(logrus.StandardLogger())

	root := &cobra.Command{
		Use:   "rpclearn",
		Short: "Active DFA learning over a JSON-RPC call-sequence alphabet",
		Long: "rpclearn learns a DFA describing the accepted call-sequence language of a\n" +
			"stateful JSON-RPC service, via L* or TTT, against a reference oracle\n" +
			"(simple/medium/complex) or a real endpoint.",
	}

	root.AddCommand(newLearnCmd(log))
	root.AddCommand(newCompareCmd(log))
	root.AddCommand(newServeMetricsCmd(log))

	return root
}
