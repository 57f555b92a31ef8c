// Package bench is the query-driven testing and benchmarking harness
// named in §6 of the specification as an external collaborator: given a
// graph and a parsed query file (package query), it runs the matching
// solver on every row, checks the result's structural invariants with
// package verify, and compares the reported cost against the row's
// expected answer.
//
// This is deliberately a thin layer: the solvers and verify already do
// the real work, so Check* here is mostly "call the right Solve, call
// the right verify.* checks, and diff the cost". bench_test.go then
// benchmarks the same solvers over builder-generated fixtures, one
// testing.B function per solver and fixture.
package bench
