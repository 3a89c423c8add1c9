// File: methods_adjacent.go
// Role: Neighborhood queries.
//
// Determinism:
//   - Neighbors/Entries report most-recent-first.
//   - AdjacencyList iterates in slot order; a repeated payload is reported once,
//     from its first slot, matching AddEdge resolution.

package core

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Neighbors returns the neighbor payloads of the first vertex holding data,
// most recently added first.
//
// Errors:
//   - ErrVertexNotFound if no populated slot holds data.
//
// Complexity: O(len + deg).
func (g *Graph) Neighbors(data int) ([]int, error) {
	g.mustLive("Neighbors")
	i := g.find(data)
	if i < 0 {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, data)
	}

	return neighborsOf(&g.slots[i]), nil
}

// Entries is Neighbors with each entry's identity attached.
func (g *Graph) Entries(data int) ([]Entry, error) {
	g.mustLive("Entries")
	i := g.find(data)
	if i < 0 {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, data)
	}

	src := g.slots[i].entries
	out := make([]Entry, len(src))
	for k := range src {
		out[k] = src[len(src)-1-k]
	}

	return out, nil
}

// HasNeighbors reports whether the first vertex holding data has any entry.
func (g *Graph) HasNeighbors(data int) (bool, error) {
	g.mustLive("HasNeighbors")
	i := g.find(data)
	if i < 0 {
		return false, fmt.Errorf("%w: %d", ErrVertexNotFound, data)
	}

	return len(g.slots[i].entries) > 0, nil
}

// AdjacencyList returns payload → neighbors (most-recent-first) in slot order.
// The map is a fresh copy; mutating it does not touch the graph.
//
// Complexity: O(len + entries).
func (g *Graph) AdjacencyList() *orderedmap.OrderedMap[int, []int] {
	g.mustLive("AdjacencyList")

	om := orderedmap.New[int, []int]()
	for i := 0; i < g.n; i++ {
		v := &g.slots[i]
		if _, seen := om.Get(v.Data); seen {
			continue
		}
		om.Set(v.Data, neighborsOf(v))
	}

	return om
}

// neighborsOf copies v's entries out newest-first.
func neighborsOf(v *Vertex) []int {
	out := make([]int, len(v.entries))
	for k := range v.entries {
		out[k] = v.entries[len(v.entries)-1-k].Neighbor
	}

	return out
}
