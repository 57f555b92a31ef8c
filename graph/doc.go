// Package graph defines the central Edge and UndirectedGraph types this
// module is built on, and a text parser for the input format.
//
// Edge is a capability interface rather than a concrete struct so that
// BasicEdge and PlanarEdge can share every algorithm in this module
// (search, split, oddwalk, oddpath) without the solvers ever touching a
// concrete field. UndirectedGraph is an adjacency-list container keyed
// by vertex index in [0,n) — built once at parse time and never mutated
// again by a solver.
package graph
