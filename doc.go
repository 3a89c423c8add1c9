// Package adjgraph is a small in-memory graph container: a fixed number of
// integer-payload vertices, each with an ordered list of neighbor payloads.
//
// Under the hood, everything is organized under two packages and one command:
//
//	core/          the Graph: construction, AddVertex, AddEdge, queries, Print, Destroy
//	builder/       datasets (built-in, YAML, HCL), validation, dataset → Graph
//	cmd/adjgraph/  builds a dataset, prints it, releases it
//
// Quick ASCII example (the built-in reference network):
//
//	100─────200─────600
//	 │ ╲      │
//	 │   ╲    │
//	300──400──500
//
// Edges are recorded newest-first, so 100 reports [400 300 200].
//
// Out of scope: weights, edge removal, traversal algorithms, resizing and
// concurrent mutation.
//
//	go get github.com/katalvlaran/adjgraph
package adjgraph
