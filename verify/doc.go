// Package verify implements the invariant checks every solver's output
// is expected to satisfy: path validity and parity, bottleneck-edge
// traversal, vertex-disjointness, and diversion-cut correctness. These
// are assertions for tests and tooling, not part of any solver's
// control flow.
package verify
