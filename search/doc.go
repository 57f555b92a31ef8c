// Package search provides the plain graph-traversal primitives the
// solvers in this module build reductions on top of: an unweighted BFS
// (used by package diversion to find an s-t-path that avoids edge d) and
// a weighted Dijkstra for plain (not parity-constrained) shortest paths.
// Dijkstra follows the same lazy-decrease-key heap discipline as the
// blossom solver itself; BFS uses a plain FIFO queue. Both accept a
// functional Option to exclude a single edge from
// traversal, since "find a path avoiding edge d" is a recurring need.
package search
