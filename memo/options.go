// SPDX-License-Identifier: MIT
// Package memo: functional options for Shared.
//
// Contract:
//   • Options are functional (type Option func(*sharedConfig)).
//   • Option constructors validate and PANIC on meaningless inputs
//     (nil provider, nil logger, non-positive shard count).
//   • Defaults are deterministic: 16 shards, noop metrics, nop logger.

package memo

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// Deterministic defaults (named, no magic numbers).
const (
	defaultShards    = 16
	defaultMeterName = "github.com/katalvlaran/algorithms/memo"
	defaultTableName = "memo"
)

// Option customizes a Shared table before it is built.
type Option func(*sharedConfig)

// sharedConfig aggregates all knobs for Shared. Passed by value.
type sharedConfig struct {
	shards        int
	meterProvider metric.MeterProvider
	logger        *zap.Logger
	name          string
}

// WithShards sets the number of lock shards. It is rounded up to the next
// power of two. Panics if n <= 0.
func WithShards(n int) Option {
	if n <= 0 {
		panic("memo: WithShards(n<=0)")
	}
	return func(c *sharedConfig) {
		c.shards = n
	}
}

// WithMeterProvider records hit/miss/load counters through mp.
// Panics on nil.
func WithMeterProvider(mp metric.MeterProvider) Option {
	if mp == nil {
		panic("memo: WithMeterProvider(nil)")
	}
	return func(c *sharedConfig) {
		c.meterProvider = mp
	}
}

// WithLogger attaches a zap logger; load failures are logged at debug level.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("memo: WithLogger(nil)")
	}
	return func(c *sharedConfig) {
		c.logger = l
	}
}

// WithName labels metrics and log lines with a table name (attribute
// "memo.table"). Empty means the default "memo".
func WithName(name string) Option {
	return func(c *sharedConfig) {
		c.name = name
	}
}

// newSharedConfig applies opts over deterministic defaults, last wins.
func newSharedConfig(opts ...Option) sharedConfig {
	cfg := sharedConfig{
		shards:        defaultShards,
		meterProvider: noop.NewMeterProvider(),
		logger:        zap.NewNop(),
		name:          defaultTableName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.name == "" {
		cfg.name = defaultTableName
	}
	cfg.shards = nextPow2(cfg.shards)

	return cfg
}

// nextPow2 returns the smallest power of two >= n (n >= 1).
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
