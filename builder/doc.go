// Package builder constructs small, deterministic graph fixtures —
// path, cycle, complete, star and wheel — for use in tests and
// benchmarks. Every constructor takes an explicit vertex count and a
// uniform edge weight and returns a ready UndirectedGraph; there is no
// builder configuration to resolve, since vertex count is fixed at
// construction for graph.New.
package builder
