// Package builder turns adjacency datasets into core.Graph instances.
//
// A Dataset is the declarative form of a graph: its kind, its slot capacity,
// the vertex payloads in insertion order and the edges as payload pairs.
// Datasets come from three places:
//
//	Default()          the built-in six-vertex reference network
//	LoadFile(path)     .yaml/.yml (gopkg.in/yaml.v3) or .hcl (hashicorp/hcl/v2)
//	Decode(fmt, data)  the same decoders over an in-memory buffer
//
// Build validates a Dataset, allocates the graph, appends the vertices and
// then inserts the edges. An edge that names a payload the graph does not
// hold is a recoverable condition: by default it is skipped and listed in
// the returned Report; WithStrictEdges turns it into a build failure.
//
// Example YAML:
//
//	name: reference
//	kind: undirected
//	capacity: 6
//	vertices: [100, 200, 300, 400, 500, 600]
//	edges:
//	  - [100, 200]
//	  - [100, 300]
//
// Example HCL:
//
//	name     = "reference"
//	kind     = "undirected"
//	capacity = 6
//	vertices = [100, 200, 300, 400, 500, 600]
//	edges    = [[100, 200], [100, 300]]
package builder
