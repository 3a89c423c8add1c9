// File: methods.go
// Role: Teardown and precondition guards.
//
// A graph is released as a whole: every adjacency list, then the slot storage.
// There is no partial deletion of a vertex or an edge.

package core

import "fmt"

// Destroy releases every adjacency entry and the slot storage and moves the
// graph to Destroyed. Calling Destroy (or anything but State) afterwards
// panics with ErrDestroyed.
//
// Complexity: O(capacity).
func (g *Graph) Destroy() {
	g.mustLive("Destroy")

	released := 0
	for i := range g.slots {
		released += len(g.slots[i].entries)
		g.slots[i].entries = nil
	}
	g.slots = nil
	g.n = 0
	g.destroyed = true

	g.log.V(1).Info("graph destroyed", "entriesReleased", released)
}

// Release destroys *gp and clears the caller's handle. A nil handle (or a
// handle already cleared by a previous Release) is left alone, so
//
//	core.Release(&g)
//	core.Release(&g) // no-op: g == nil
//
// is safe where calling g.Destroy() twice is not.
func Release(gp **Graph) {
	if gp == nil || *gp == nil {
		return
	}
	(*gp).Destroy()
	*gp = nil
}

// mustLive panics when g is nil or destroyed. op names the caller in the panic.
func (g *Graph) mustLive(op string) {
	if g == nil {
		panic(fmt.Errorf("%w: %s on nil graph", ErrDestroyed, op))
	}
	if g.destroyed {
		panic(fmt.Errorf("%w: %s after Destroy", ErrDestroyed, op))
	}
}
