package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// config is the host configuration loaded by viper (spec §5.3): an
// RPC endpoint, per-probe timeouts keyed by oracle variant, and the
// equivalence oracle's random seed. Env vars are prefixed RPCLEARN_ (e.g.
// RPCLEARN_ENDPOINT) and an optional rpclearn.yaml in the working directory
// or $HOME overrides the defaults below.
type config struct {
	Endpoint       string
	SimpleTimeout  time.Duration
	MediumTimeout  time.Duration
	ComplexTimeout time.Duration
	Seed           int64
}

// defaultConfig mirrors spec §6: 3s for simple/medium, 5s for complex, seed
// 0 (eq.DefaultSeed).
func defaultConfig() config {
	return config{
		Endpoint:       "http://127.0.0.1:8545",
		SimpleTimeout:  3 * time.Second,
		MediumTimeout:  3 * time.Second,
		ComplexTimeout: 5 * time.Second,
		Seed:           0,
	}
}

// loadConfig builds a viper instance bound to RPCLEARN_-prefixed env vars
// and an optional rpclearn.yaml, seeded with defaultConfig's values so an
// unconfigured host still runs against the reference endpoint.
func loadConfig() (config, error) {
	v := viper.New()
	v.SetEnvPrefix("rpclearn")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("rpclearn")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	def := defaultConfig()
	v.SetDefault("endpoint", def.Endpoint)
	v.SetDefault("simple_timeout", def.SimpleTimeout)
	v.SetDefault("medium_timeout", def.MediumTimeout)
	v.SetDefault("complex_timeout", def.ComplexTimeout)
	v.SetDefault("seed", def.Seed)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return config{}, fmt.Errorf("cmd/rpclearn: reading config: %w", err)
		}
	}

	return config{
		Endpoint:       v.GetString("endpoint"),
		SimpleTimeout:  v.GetDuration("simple_timeout"),
		MediumTimeout:  v.GetDuration("medium_timeout"),
		ComplexTimeout: v.GetDuration("complex_timeout"),
		Seed:           v.GetInt64("seed"),
	}, nil
}

// timeoutFor returns the per-probe timeout for the given oracle variant
// name, per spec §6.
func (c config) timeoutFor(variant string) time.Duration {
	switch variant {
	case "medium":
		return c.MediumTimeout
	case "complex":
		return c.ComplexTimeout
	default:
		return c.SimpleTimeout
	}
}
