// Package oddpath collects five shortest-path problems on undirected,
// non-negatively weighted graphs, all built on one core engine:
//
//	Shortest Odd Walk        — cheapest s-t-walk using an odd number of edges
//	Shortest Odd Path        — cheapest s-t-path (no repeated vertex) using
//	                           an odd number of edges
//	Shortest Bottleneck Path — cheapest s-t-path forced through a named edge
//	Two Vertex-Disjoint Paths — cheapest vertex-disjoint s1-t1/s2-t2 pair
//	Network Diversion        — cheapest edge set that forces every s-t-path
//	                           in a planar graph through a named edge
//
// The hard core is Shortest Odd Path: a weighted variant of Derigs'
// blossom-contraction algorithm run over a mirrored graph. Bottleneck,
// Two-Disjoint-Paths and Network Diversion all reduce to it by graph
// transformation — edge subdivision to encode a forced crossing, and,
// for Diversion, a further pass through the planar dual.
//
// Subpackages:
//
//	weight/      totally-ordered additive weight with an infinity lift
//	graph/       adjacency-list undirected graph, edge abstraction, text parser
//	planar/      embeddings, clockwise rotation systems, dual construction
//	base/        path-compressed blossom-base tracking
//	split/       edge-subdivision reduction and path reconstruction
//	search/      BFS and Dijkstra helpers
//	oddwalk/     Shortest Odd Walk solver
//	oddpath/     Shortest Odd Path solver, the core
//	bottleneck/  Shortest Bottleneck Path reduction
//	disjoint/    Two Vertex-Disjoint Paths reduction
//	diversion/   Network Diversion reduction
//	query/       PathResult type and query-file parsers
//	verify/      invariant checks used by tests and tooling
//	bench/       query-driven benchmarking/verification harness
//	builder/     small graph fixtures for tests (path, cycle, complete, star, wheel)
//	cmd/oddpath/ command-line entry point
package oddpath
