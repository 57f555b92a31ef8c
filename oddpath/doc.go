// Package oddpath solves Shortest Odd Path: the shortest simple s-t-path
// using an odd number of edges. It is a weighted generalization of
// Derigs' blossom-contraction algorithm for maximum matching, run not on
// the input graph directly but on a mirrored copy of it.
//
// Every non-terminal vertex u gets a twin u' in the mirror graph; an edge
// not touching s or t is mirrored alongside its original. A simple odd
// s-t-path in the original graph corresponds to a simple s-t-path in the
// mirror graph that alternates between the two copies on every
// non-terminal vertex it visits — which lets the solver track parity
// implicitly through two per-vertex distance labels (d_plus for "outer",
// d_minus for "inner") instead of carrying an explicit parity bit.
//
// Two classes of priority-queue event drive the search: a VertexEvent
// grows a vertex from inner to outer, and a BlossomEvent contracts an
// odd cycle discovered when two outer vertices in different blossoms
// turn out to be joinable. Both share one min-heap, popped in
// nondecreasing cost order with stale entries (a vertex already grown,
// or an edge whose endpoints already share a blossom) skipped lazily
// rather than removed eagerly — the same discipline package search's
// Dijkstra uses for ordinary shortest paths.
package oddpath
