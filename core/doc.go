// Package core provides a fixed-capacity in-memory Graph whose vertices carry
// integer payloads and whose adjacency is kept as one ordered list of neighbor
// payloads per vertex.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Capacity is chosen at construction (New) and never changes.
//   - Vertices are appended one at a time into the next free slot (AddVertex).
//   - Edges reference vertices by payload, not by slot index (AddEdge).
//   - Undirected graphs mirror every edge into the end vertex's list.
//   - Neighbor lists report the most recently added entry first.
//   - The whole graph is torn down at once (Destroy / Release).
//
// Lifecycle:
//
//	Building --AddVertex (len==cap)--> Full
//	Building|Full --Destroy--> Destroyed (terminal)
//
// AddEdge is accepted in Building and Full as soon as one vertex exists.
//
// Error classes:
//
//	Recoverable (returned):
//		ErrBadCapacity     – New with a capacity that cannot be allocated
//		ErrAllocation      – reserved; New does not return it (Go aborts on OOM)
//		ErrVertexNotFound  – AddEdge/Neighbors referencing an absent payload
//		ErrUnknownKind     – ParseKind on an unrecognised spelling
//
//	Fatal (panic with an error wrapping):
//		ErrCapacityExceeded – AddVertex on a Full graph
//		ErrEmptyGraph       – AddEdge before any vertex exists
//		ErrDestroyed        – any operation on a destroyed graph
//
// Lookup:
//
//	Payload lookup is a linear scan over populated slots. Payloads are not
//	required to be unique; when they repeat, the lowest slot index wins.
//
// Concurrency:
//
//	A Graph is owned by a single goroutine. It performs no locking; callers
//	that share one must synchronise externally.
//
// Complexity:
//
//	New          O(capacity)
//	AddVertex    O(1)
//	AddEdge      O(len) scan + O(1) amortized insert
//	Neighbors    O(len + deg)
//	Print        O(len + entries)
//	Destroy      O(capacity)
package core
