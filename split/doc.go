// Package split implements the edge-subdivision reduction every parity
// problem in this module is built on: Bottleneck Path, Two Vertex-Disjoint
// Paths and Network Diversion all reduce to Shortest Odd Path by first
// making exactly the edges they care about ("protected") the only ones
// that can contribute an odd number of hops.
//
// Split walks a graph's edges once. Each protected edge is copied as-is.
// Every other edge (u,v) is subdivided by a fresh midpoint vertex m,
// becoming (u,m) carrying the original weight and (m,v) carrying zero
// weight — so any s-t-walk's edge count in the split graph has the same
// parity as the number of protected edges it used. A Result remembers how
// to fold a split-graph path back into
// one over the original edge type.
package split
