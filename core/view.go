// File: view.go
// Role: Human-readable dump of the graph.
//
// Format (one block per populated slot, then a closing blank line):
//
//	Vertex[<slot>].data=<payload>
//	 Has neighbors:
//	 <n1> -> <n2> -> ... Nil
//
// or " Has no neighbors" for an empty list. At depth ≥ 2 every neighbor is
// followed by "(Entry:<uuid>)". No consumer parses this text.

package core

import (
	"fmt"
	"io"
	"strings"
)

// Print depth levels.
const (
	// DepthSummary prints payloads and whether each vertex has neighbors.
	DepthSummary = 0
	// DepthNeighbors additionally lists neighbors most-recent-first.
	DepthNeighbors = 1
	// DepthEntries additionally shows each entry's identity.
	DepthEntries = 2
)

// Print writes the dump of g to w. It does not change g.
//
// Errors:
//   - the first write error returned by w.
//
// Complexity: O(len + entries).
func (g *Graph) Print(w io.Writer, depth int) error {
	g.mustLive("Print")

	p := &printer{w: w}
	for i := 0; i < g.n; i++ {
		v := &g.slots[i]
		p.printf("\nVertex[%d].data=%d\n", i, v.Data)

		if len(v.entries) == 0 {
			p.printf(" Has no neighbors\n")
			continue
		}
		p.printf(" Has neighbors:\n ")
		if depth < DepthNeighbors {
			continue
		}

		for k := len(v.entries) - 1; k >= 0; k-- {
			e := v.entries[k]
			p.printf(" %d ", e.Neighbor)
			if depth >= DepthEntries {
				p.printf("(Entry:%s) ", e.ID)
			}
			p.printf("->")
		}
		p.printf(" Nil\n")
	}
	p.printf("\n")

	return p.err
}

// Dump returns Print's output as a string.
func (g *Graph) Dump(depth int) string {
	var sb strings.Builder
	_ = g.Print(&sb, depth) // strings.Builder never fails

	return sb.String()
}

// printer keeps the first write error and drops later writes.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
