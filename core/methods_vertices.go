// File: methods_vertices.go
// Role: Vertex insertion & payload lookup.
//
// Determinism:
//   - Vertices() returns payloads in slot (insertion) order.
//   - find() is first-match-wins: duplicate payloads resolve to the lowest slot.

package core

import "fmt"

// AddVertex appends a vertex holding data at the next free slot with an empty
// adjacency list.
//
// Implementation:
//   - Stage 1: Panic with ErrDestroyed on a destroyed graph.
//   - Stage 2: Panic with ErrCapacityExceeded when Len()==Cap(); this is
//     caller misuse, not a runtime input condition.
//   - Stage 3: Populate slots[n] and advance n.
//
// Notes:
//   - Payload uniqueness is not checked. Duplicates make AddEdge resolve to
//     the first slot holding the payload.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) AddVertex(data int) {
	g.mustLive("AddVertex")
	if g.n >= len(g.slots) {
		panic(fmt.Errorf("%w: AddVertex(%d) with %d/%d slots used",
			ErrCapacityExceeded, data, g.n, len(g.slots)))
	}

	g.slots[g.n] = Vertex{Data: data}
	g.n++

	if g.n == len(g.slots) {
		g.log.V(1).Info("graph full", "capacity", len(g.slots))
	}
}

// Vertices returns the populated payloads in slot order.
//
// Complexity: O(len).
func (g *Graph) Vertices() []int {
	g.mustLive("Vertices")

	out := make([]int, g.n)
	for i := 0; i < g.n; i++ {
		out[i] = g.slots[i].Data
	}

	return out
}

// VertexAt returns the payload stored in slot i and whether slot i is populated.
func (g *Graph) VertexAt(i int) (int, bool) {
	g.mustLive("VertexAt")
	if i < 0 || i >= g.n {
		return 0, false
	}

	return g.slots[i].Data, true
}

// HasVertex reports whether any populated slot holds data.
func (g *Graph) HasVertex(data int) bool {
	g.mustLive("HasVertex")
	return g.find(data) >= 0
}

// find returns the lowest populated slot index holding data, or -1.
func (g *Graph) find(data int) int {
	for i := 0; i < g.n; i++ {
		if g.slots[i].Data == data {
			return i
		}
	}

	return -1
}
