// Package weight defines the numeric foundation every graph and solver in
// this module is built on: a totally-ordered, additive notion of edge
// weight, and a Cost[W] wrapper that lifts it with an "infinity" value
// for use as a tentative shortest-path label.
//
// Two concrete weight kinds are supported, matching real input data:
// unsigned 64-bit integers and IEEE-754 float64s. Both satisfy Numeric
// directly via Go's built-in arithmetic operators, so no interface
// indirection is needed for +, -, or comparisons; Cost[W] and Parse[W]
// are the only places that must special-case by kind (Go generics do
// not support specialization, so that dispatch is a type switch on
// any(zero).(type), same trick used whenever a generic numeric package
// in Go needs kind-specific parsing).
package weight
