// SPDX-License-Identifier: MIT
// Package: adjgraph/builder
//
// api.go: Build turns a Dataset into a core.Graph.
//
// Order of work mirrors the graph lifecycle: allocate, append every vertex,
// then insert every edge. Unknown payloads in edges are recoverable; the
// graph is returned with those edges left out unless WithStrictEdges is set.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/adjgraph/core"
)

// SkippedEdge records an edge Build left out and why.
type SkippedEdge struct {
	Index int
	Pair  Pair
	Err   error
}

// Report summarises one Build.
type Report struct {
	Dataset  string
	Vertices int
	Added    int
	Skipped  []SkippedEdge
}

// Build validates ds, allocates a core.Graph and populates it.
//
// Implementation:
//   - Stage 1: Validate(ds, opts...); any finding aborts before allocation.
//   - Stage 2: core.New(EffectiveCapacity, Kind) with the configured logger
//     and forwarded graph options.
//   - Stage 3: AddVertex for every payload, in order.
//   - Stage 4: AddEdge for every pair; ErrVertexNotFound either records a
//     SkippedEdge or, when strict, releases the graph and fails.
//
// Returns:
//   - *core.Graph: owned by the caller; release it with core.Release.
//   - *Report: counts and skipped edges (nil on error).
func Build(ds *Dataset, opts ...BuilderOption) (*core.Graph, *Report, error) {
	if err := Validate(ds, opts...); err != nil {
		return nil, nil, fmt.Errorf("Build: %w", err)
	}
	cfg := newBuilderConfig(opts...)
	log := cfg.log.WithValues("dataset", ds.Name)

	gopts := append([]core.GraphOption{core.WithLogger(log)}, cfg.graphOpts...)
	g, err := core.New(ds.EffectiveCapacity(), ds.Kind, gopts...)
	if err != nil {
		return nil, nil, fmt.Errorf("Build: %w", err)
	}

	for _, v := range ds.Vertices {
		g.AddVertex(v)
	}

	rep := &Report{Dataset: ds.Name, Vertices: len(ds.Vertices)}
	for i, p := range ds.Edges {
		err := addEdge(g, p)
		switch {
		case err == nil:
			rep.Added++
		case errors.Is(err, core.ErrVertexNotFound) && !cfg.strictEdges:
			log.Info("edge skipped", "index", i, "edge", p.String(), "reason", err.Error())
			rep.Skipped = append(rep.Skipped, SkippedEdge{Index: i, Pair: p, Err: err})
		default:
			core.Release(&g)
			return nil, nil, fmt.Errorf("Build: edges[%d] %s: %w: %w", i, p, ErrUnresolvedEdge, err)
		}
	}

	log.Info("graph built",
		"kind", ds.Kind.String(), "capacity", ds.EffectiveCapacity(),
		"vertices", rep.Vertices, "edges", rep.Added, "skipped", len(rep.Skipped))

	return g, rep, nil
}

// addEdge is AddEdge with the empty-graph precondition turned into a lookup
// miss: a dataset with edges but no vertices is bad input, not misuse.
func addEdge(g *core.Graph, p Pair) error {
	if g.Len() == 0 {
		return fmt.Errorf("%w: start %d", core.ErrVertexNotFound, p.Start)
	}

	return g.AddEdge(p.Start, p.End)
}
