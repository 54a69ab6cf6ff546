package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arrowstate/rpclearn/alphabet"
	"github.com/arrowstate/rpclearn/eq"
)

// RunResult records one learning run, fields drawn directly from
// batch_compare.py's RunResult dataclass (supplementing spec.md's purpose
// statement: "compared on execution time, membership-query count, and
// underlying RPC call count"). Exported so a host that wants CSV/plot
// output — out of scope here — can consume it directly.
type RunResult struct {
	Mode     string
	Trial    int
	Algo     string
	Status   string // OK / TIMEOUT / ERROR
	Seconds  float64
	MQCount  uint64
	RPCCount uint64
	Error    string
}

// runTimeout bounds a single learning run in cmd/rpclearn compare, standing
// in for batch_compare.py's SIGALRM-based run_with_timeout: ctx cancellation
// is the portable equivalent spec §1 expects here (OS signal timeout
// management is named out of scope).
const runTimeout = 30 * time.Second

func newCompareCmd(log *logrus.Entry) *cobra.Command {
	var oracleVariant string
	var trials int

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run both learners against one oracle variant N times and print a comparison table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			runID := uuid.New()
			log = log.WithField("run_id", runID.String())

			var results []RunResult
			for _, algo := range []string{"lstar", "ttt"} {
				for trial := 1; trial <= trials; trial++ {
					mq, err := buildOracle(oracleVariant, cfg, log)
					if err != nil {
						return err
					}
					eqOracle, err := eq.New(alphabet.Reference, mq, eq.WithSeed(cfg.Seed+int64(trial)))
					if err != nil {
						return err
					}
					results = append(results, runOnce(cmd.Context(), oracleVariant, algo, trial, mq, eqOracle, log))
				}
			}

			printResults(results)
			return nil
		},
	}

	cmd.Flags().StringVar(&oracleVariant, "oracle", "simple", "oracle variant: simple|medium|complex")
	cmd.Flags().IntVar(&trials, "trials", 5, "number of trials per algorithm")

	return cmd
}

func runOnce(parent context.Context, mode, algo string, trial int, mq mqOracle, eqOracle *eq.Oracle, log *logrus.Entry) RunResult {
	ctx, cancel := context.WithTimeout(parent, runTimeout)
	defer cancel()

	start := time.Now()
	dfa, err := runLearner(ctx, algo, mq, eqOracle, log)
	elapsed := time.Since(start)

	res := RunResult{
		Mode:     mode,
		Trial:    trial,
		Algo:     algo,
		Seconds:  elapsed.Seconds(),
		MQCount:  mq.MQCount(),
		RPCCount: mq.RPCCount(),
	}

	switch {
	case err == nil:
		res.Status = "OK"
	case errors.Is(err, context.DeadlineExceeded):
		res.Status = "TIMEOUT"
		res.Error = fmt.Sprintf("timeout>%s", runTimeout)
	case dfa == nil:
		res.Status = "ERROR"
		res.Error = err.Error()
	default:
		// A non-nil, non-deadline error alongside a DFA is a TTT warning
		// (refinement exhausted/capped) riding with a still-usable
		// hypothesis, not a hard failure; record it but keep status OK
		// since a DFA was produced.
		res.Status = "OK"
		res.Error = err.Error()
	}

	return res
}

func printResults(results []RunResult) {
	fmt.Printf("%-4s %-6s %-6s %-8s %10s %8s %8s  %s\n",
		"trl", "mode", "algo", "status", "seconds", "mq", "rpc", "error")
	for _, r := range results {
		fmt.Printf("%-4d %-6s %-6s %-8s %10.4f %8d %8d  %s\n",
			r.Trial, r.Mode, r.Algo, r.Status, r.Seconds, r.MQCount, r.RPCCount, r.Error)
	}
}
