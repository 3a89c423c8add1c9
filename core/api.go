// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructor and read-only getters.
// Policy:
//   - No mutation here except slot allocation in New.
//   - Getters on a destroyed or nil graph panic (ErrDestroyed), except State().

package core

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

// New allocates a Graph with exactly capacity empty vertex slots.
//
// Implementation:
//   - Stage 1: Reject capacities outside [1, MaxCapacity] with ErrBadCapacity.
//   - Stage 2: Allocate the slot slice up front (see MaxCapacity for the cost).
//   - Stage 3: Apply options left-to-right.
//
// New never returns ErrAllocation: the range check rules out a bad length,
// and the Go runtime aborts the process on out-of-memory rather than
// panicking, so there is nothing to recover.
//
// Returns:
//   - *Graph: a Building graph with Len()==0, or nil on error.
//
// Complexity:
//   - Time O(capacity), Space O(capacity).
func New(capacity int, kind Kind, opts ...GraphOption) (*Graph, error) {
	if capacity < 1 || capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrBadCapacity, capacity, MaxCapacity)
	}
	if kind != Undirected && kind != Directed {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	g := &Graph{
		kind:  kind,
		slots: make([]Vertex, capacity),
		log:   logr.Discard(),
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log.V(1).Info("graph created", "capacity", capacity, "kind", kind.String())

	return g, nil
}

// Cap returns the fixed slot capacity.
func (g *Graph) Cap() int {
	g.mustLive("Cap")
	return len(g.slots)
}

// Len returns the number of populated vertices.
func (g *Graph) Len() int {
	g.mustLive("Len")
	return g.n
}

// Kind returns the construction-time kind.
func (g *Graph) Kind() Kind {
	g.mustLive("Kind")
	return g.kind
}

// Directed reports Kind() == Directed.
func (g *Graph) Directed() bool {
	return g.Kind() == Directed
}

// State reports Building, Full or Destroyed. It is the one query that is
// valid on a destroyed graph, and on the nil handle Release leaves behind,
// which reports Destroyed.
func (g *Graph) State() State {
	switch {
	case g == nil || g.destroyed:
		return Destroyed
	case g.n == len(g.slots):
		return Full
	default:
		return Building
	}
}

// Stats returns a snapshot of capacity, counts, kind and state.
//
// Complexity: O(len) for the entry count.
func (g *Graph) Stats() *GraphStats {
	g.mustLive("Stats")

	return &GraphStats{
		Capacity:    len(g.slots),
		VertexCount: g.n,
		EntryCount:  g.EntryCount(),
		Kind:        g.kind,
		State:       g.State(),
	}
}
