// File: methods_edges.go
// Role: Edge insertion and entry counting.
//
// Determinism:
//   - New entries are reported first by every read path (most-recent-first).
//   - Undirected edges insert the mirror entry after the forward entry.

package core

import "fmt"

// AddEdge records an edge from the vertex holding start to the vertex holding end.
//
// Steps:
//  1. Panic with ErrDestroyed / ErrEmptyGraph on misuse.
//  2. Resolve start and end by linear scan (first match wins).
//  3. If either is absent return ErrVertexNotFound; the graph is unchanged.
//  4. Prepend end to start's neighbors.
//  5. Undirected: prepend start to end's neighbors. For start==end this
//     inserts a second entry into the same list.
//
// Complexity: O(len) scan + O(1) amortized insert.
func (g *Graph) AddEdge(start, end int) error {
	g.mustLive("AddEdge")
	if g.n == 0 {
		panic(fmt.Errorf("%w: AddEdge(%d, %d)", ErrEmptyGraph, start, end))
	}

	si := g.find(start)
	if si < 0 {
		return fmt.Errorf("%w: start %d", ErrVertexNotFound, start)
	}
	ei := g.find(end)
	if ei < 0 {
		return fmt.Errorf("%w: end %d", ErrVertexNotFound, end)
	}

	g.insert(si, end)
	if g.kind == Undirected {
		g.insert(ei, start)
	}

	return nil
}

// insert adds a neighbor entry to slot i. Entries are appended and read back
// in reverse, which is how "prepend" stays O(1) amortized.
func (g *Graph) insert(i, neighbor int) {
	e := Entry{Neighbor: neighbor, ID: g.newID()}
	v := &g.slots[i]
	v.entries = append(v.entries, e)

	g.log.V(1).Info("entry inserted",
		"slot", i, "vertex", v.Data, "neighbor", neighbor, "entry", e.ID.String())
}

// EntryCount returns the number of adjacency entries over all vertices.
// An undirected edge contributes two.
func (g *Graph) EntryCount() int {
	g.mustLive("EntryCount")

	total := 0
	for i := 0; i < g.n; i++ {
		total += len(g.slots[i].entries)
	}

	return total
}
