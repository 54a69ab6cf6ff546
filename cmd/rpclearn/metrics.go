package main

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arrowstate/rpclearn/alphabet"
	"github.com/arrowstate/rpclearn/eq"
)

// runMetrics are the gauges a batch-experiment host (spec §1/§6) would
// scrape off /metrics: the oracle's MQ/RPC counters and the wall-clock
// duration of the last learning run. CSV/plot emission stays out of scope;
// these gauges are the interface such a collector would attach to.
type runMetrics struct {
	mqCount  prometheus.Gauge
	rpcCount prometheus.Gauge
	seconds  prometheus.Gauge
}

func newRunMetrics(reg prometheus.Registerer) *runMetrics {
	return &runMetrics{
		mqCount: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "rpclearn_mq_count",
			Help: "Membership-query cache misses issued by the last learning run.",
		}),
		rpcCount: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "rpclearn_rpc_count",
			Help: "Underlying RPC probes issued by the last learning run.",
		}),
		seconds: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "rpclearn_last_run_seconds",
			Help: "Wall-clock duration of the last learning run, in seconds.",
		}),
	}
}

func newServeMetricsCmd(log *logrus.Entry) *cobra.Command {
	var addr, oracleVariant, algo string

	cmd := &cobra.Command{
		Use:   "serve-metrics",
		Short: "Run one learning pass and expose its MQ/RPC counters on a /metrics endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			rm := newRunMetrics(reg)

			mq, err := buildOracle(oracleVariant, cfg, log)
			if err != nil {
				return err
			}
			eqOracle, err := eq.New(alphabet.Reference, mq, eq.WithSeed(cfg.Seed))
			if err != nil {
				return err
			}

			start := cmd.Context()
			began := time.Now()
			dfa, learnErr := runLearner(start, algo, mq, eqOracle, log)
			rm.seconds.Set(time.Since(began).Seconds())
			if dfa == nil {
				return learnErr
			}
			if learnErr != nil {
				log.WithError(learnErr).Warn("cmd/rpclearn: learner returned with a warning")
			}

			rm.mqCount.Set(float64(mq.MQCount()))
			rm.rpcCount.Set(float64(mq.RPCCount()))

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

			log.WithField("addr", addr).Info("cmd/rpclearn: serving /metrics")
			srv := &http.Server{Addr: addr, Handler: mux}
			return serveUntilCanceled(cmd.Context(), srv)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":9100", "listen address for the /metrics endpoint")
	cmd.Flags().StringVar(&oracleVariant, "oracle", "simple", "oracle variant: simple|medium|complex")
	cmd.Flags().StringVar(&algo, "algo", "lstar", "learning algorithm: lstar|ttt")

	return cmd
}

// serveUntilCanceled runs srv until ctx is canceled (e.g. SIGINT via
// cobra's default signal handling), then shuts it down gracefully.
func serveUntilCanceled(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	}
}
