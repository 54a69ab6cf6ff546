package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arrowstate/rpclearn/alphabet"
	"github.com/arrowstate/rpclearn/automaton"
	"github.com/arrowstate/rpclearn/eq"
	"github.com/arrowstate/rpclearn/lstar"
	"github.com/arrowstate/rpclearn/ttt"
)

func newLearnCmd(log *logrus.Entry) *cobra.Command {
	var oracleVariant, algo string
	var printDOT bool

	cmd := &cobra.Command{
		Use:   "learn",
		Short: "Learn a DFA against one oracle variant with one algorithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			mq, err := buildOracle(oracleVariant, cfg, log)
			if err != nil {
				return err
			}

			eqOracle, err := eq.New(alphabet.Reference, mq, eq.WithSeed(cfg.Seed))
			if err != nil {
				return err
			}

			dfa, learnErr := runLearner(cmd.Context(), algo, mq, eqOracle, log)
			if dfa == nil {
				return learnErr
			}
			if learnErr != nil {
				log.WithError(learnErr).Warn("cmd/rpclearn: learner returned with a warning")
			}

			fmt.Printf("learned %d-state DFA (%s/%s): mq=%d rpc=%d\n",
				len(dfa.States()), oracleVariant, algo, mq.MQCount(), mq.RPCCount())
			if printDOT {
				fmt.Print(dfa.DOT())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&oracleVariant, "oracle", "simple", "oracle variant: simple|medium|complex")
	cmd.Flags().StringVar(&algo, "algo", "lstar", "learning algorithm: lstar|ttt")
	cmd.Flags().BoolVar(&printDOT, "dot", false, "print the learned DFA as Graphviz DOT source")

	return cmd
}

// runLearner dispatches to lstar.Learner or ttt.Learner by name. Both share
// the same MembershipQuerier/EquivalenceOracle shapes but are declared as
// independent interfaces in their own packages, so the
// dispatch itself — not a shared interface — is what unifies them here.
func runLearner(ctx context.Context, algo string, mq mqOracle, eqOracle *eq.Oracle, log *logrus.Entry) (*automaton.DFA, error) {
	switch algo {
	case "lstar":
		l, err := lstar.New(alphabet.Reference, mq, eqOracle, log)
		if err != nil {
			return nil, err
		}
		return l.Learn(ctx)
	case "ttt":
		l, err := ttt.New(ctx, alphabet.Reference, mq, eqOracle, log)
		if err != nil {
			return nil, err
		}
		return l.Learn(ctx)
	default:
		return nil, fmt.Errorf("cmd/rpclearn: unknown algorithm %q (want lstar|ttt)", algo)
	}
}
