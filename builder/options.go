// SPDX-License-Identifier: MIT
// Package: adjgraph/builder
//
// options.go: functional options for Build and Validate.
//
// Contract:
//   • Options mutate a builderConfig before any graph is allocated.
//   • Option constructors panic on meaningless inputs; Build and Validate
//     themselves return errors.

package builder

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/adjgraph/core"
)

// BuilderOption customizes Build and Validate.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved option set.
type builderConfig struct {
	log            logr.Logger
	strictEdges    bool
	uniquePayloads bool
	graphOpts      []core.GraphOption
}

// newBuilderConfig applies opts in order over the defaults
// (discard logger, lenient edges, duplicates allowed).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{log: logr.Discard()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger sends build progress to l and hands l to the graph as well.
// The zero logr.Logger discards.
func WithLogger(l logr.Logger) BuilderOption {
	return func(c *builderConfig) { c.log = l }
}

// WithStrictEdges makes an edge with an unknown payload fail the build
// (ErrUnresolvedEdge) instead of being skipped.
func WithStrictEdges() BuilderOption {
	return func(c *builderConfig) { c.strictEdges = true }
}

// WithUniquePayloads makes Validate reject datasets whose vertices repeat a
// payload (ErrDuplicatePayload). core itself accepts duplicates.
func WithUniquePayloads() BuilderOption {
	return func(c *builderConfig) { c.uniquePayloads = true }
}

// WithGraphOptions forwards extra options to core.New. They are applied after
// the logger option, so a core.WithLogger here wins.
func WithGraphOptions(opts ...core.GraphOption) BuilderOption {
	for i, opt := range opts {
		if opt == nil {
			panic(fmt.Sprintf("builder: WithGraphOptions nil option at %d", i))
		}
	}
	return func(c *builderConfig) { c.graphOpts = append(c.graphOpts, opts...) }
}
