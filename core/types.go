// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Vertex, Entry, Kind and State types; sentinel errors; options.

package core

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

// MaxCapacity is the largest vertex capacity New accepts.
//
// New allocates every slot up front at 32 bytes per slot on 64-bit
// platforms, so New(MaxCapacity, ...) reserves about 512 MiB before the
// first AddVertex.
const MaxCapacity = 1 << 24

// Sentinel errors for core graph operations.
var (
	// ErrBadCapacity indicates New was asked for a capacity outside [1, MaxCapacity].
	ErrBadCapacity = errors.New("core: bad capacity")

	// ErrAllocation is reserved for slot storage that cannot be obtained.
	// New does not return it: Go aborts on out-of-memory, and capacities it
	// could not size are already ErrBadCapacity.
	ErrAllocation = errors.New("core: allocation failed")

	// ErrVertexNotFound indicates an operation referenced a payload no populated vertex holds.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrUnknownKind indicates ParseKind did not recognise its input.
	ErrUnknownKind = errors.New("core: unknown graph kind")

	// ErrCapacityExceeded is the panic cause of AddVertex on a Full graph.
	ErrCapacityExceeded = errors.New("core: capacity exceeded")

	// ErrEmptyGraph is the panic cause of AddEdge before any vertex exists.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrDestroyed is the panic cause of any operation on a destroyed graph.
	ErrDestroyed = errors.New("core: graph destroyed")
)

// Kind selects whether AddEdge mirrors edges.
type Kind uint8

const (
	// Undirected graphs record every edge on both endpoints.
	Undirected Kind = iota
	// Directed graphs record an edge on its start vertex only.
	Directed
)

// String returns "undirected" or "directed".
func (k Kind) String() string {
	switch k {
	case Undirected:
		return "undirected"
	case Directed:
		return "directed"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseKind maps "directed"/"undirected" (any case, surrounding spaces ignored)
// to a Kind. The empty string parses as Undirected.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "undirected":
		return Undirected, nil
	case "directed":
		return Directed, nil
	default:
		return Undirected, ErrUnknownKind
	}
}

// State is the lifecycle position of a Graph.
type State uint8

const (
	// Building means free slots remain.
	Building State = iota
	// Full means every slot is populated; AddVertex is forbidden.
	Full
	// Destroyed is terminal.
	Destroyed
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Building:
		return "building"
	case Full:
		return "full"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Entry is one adjacency record.
//
// Neighbor is the payload of the vertex the edge points at; ID is an opaque
// identity for diagnostics (Print at depth ≥ 2).
type Entry struct {
	Neighbor int
	ID       uuid.UUID
}

// Vertex is one populated slot: a payload and its adjacency entries.
// entries are kept oldest-first; readers walk them backwards.
type Vertex struct {
	Data    int
	entries []Entry
}

// GraphOption configures a Graph inside New.
type GraphOption func(g *Graph)

// WithLogger routes lifecycle and per-entry debug traces to l.
// Entry insertions are logged at V(1).
func WithLogger(l logr.Logger) GraphOption {
	return func(g *Graph) { g.log = l }
}

// WithEntryIDs replaces the Entry.ID generator (uuid.New by default).
// Panics on nil.
func WithEntryIDs(fn func() uuid.UUID) GraphOption {
	if fn == nil {
		panic("core: WithEntryIDs(nil)")
	}
	return func(g *Graph) { g.newID = fn }
}

// Graph is a fixed-capacity adjacency-list graph over integer payloads.
//
// slots has length == capacity for the whole life of the graph; only
// slots[:n] are populated.
type Graph struct {
	kind  Kind
	slots []Vertex
	n     int

	destroyed bool

	log   logr.Logger
	newID func() uuid.UUID
}

// GraphStats is a read-only snapshot returned by Stats.
type GraphStats struct {
	Capacity    int
	VertexCount int
	EntryCount  int
	Kind        Kind
	State       State
}
