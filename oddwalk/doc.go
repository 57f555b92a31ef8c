// Package oddwalk solves Shortest Odd Walk: the shortest s-t-walk using
// an odd number of edges, where vertices may repeat. Because a walk may
// revisit a vertex, there is no need for blossom contraction here — a
// plain layered Dijkstra over two copies of each vertex's distance (one
// for "reached by an even number of edges", one for "reached by an odd
// number") finds the answer directly. This is the simpler cousin of
// package oddpath, which adds blossom contraction to forbid repeats.
package oddwalk
