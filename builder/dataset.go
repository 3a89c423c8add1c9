// SPDX-License-Identifier: MIT
// Package: adjgraph/builder
//
// dataset.go: declarative graph description and the built-in reference network.

package builder

import (
	"fmt"

	"github.com/katalvlaran/adjgraph/core"
)

// Pair is one edge given by payloads.
type Pair struct {
	Start int
	End   int
}

// String renders the pair as "(start,end)".
func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.Start, p.End)
}

// Dataset describes a graph to build.
//
// Capacity 0 means "exactly len(Vertices)".
type Dataset struct {
	Name     string
	Kind     core.Kind
	Capacity int
	Vertices []int
	Edges    []Pair
}

// EffectiveCapacity resolves Capacity 0 to the vertex count.
func (ds *Dataset) EffectiveCapacity() int {
	if ds.Capacity == 0 {
		return len(ds.Vertices)
	}

	return ds.Capacity
}

// Reference dataset constants.
const (
	ReferenceName     = "reference"
	ReferenceCapacity = 6
)

// Default returns a fresh copy of the reference network: six vertices
// 100..600 in an undirected graph with seven edges.
func Default() *Dataset {
	return &Dataset{
		Name:     ReferenceName,
		Kind:     core.Undirected,
		Capacity: ReferenceCapacity,
		Vertices: []int{100, 200, 300, 400, 500, 600},
		Edges: []Pair{
			{100, 200}, {100, 300}, {100, 400},
			{200, 500}, {200, 600},
			{300, 400},
			{400, 500},
		},
	}
}
