// Package query holds the shared result type every solver in this module
// returns (PathResult[W,E]) and the parsers for the per-problem ".walk",
// ".path", ".bottleneck", ".disjoint" and ".diversion" query-file
// formats described in §6: one expected-answer row per query, checked
// against a solver's actual output by package bench (which uses the
// invariant checks of package verify).
package query
