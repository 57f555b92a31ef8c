// Package bottleneck solves Shortest Bottleneck Path: the shortest
// s-t-path in a graph that is required to traverse one named edge.
//
// It reduces to Shortest Odd Path by protecting the bottleneck edge from
// subdivision (see package split) and solving on the resulting graph: any
// s-t-walk using an odd number of split-graph edges may cross any number
// of unprotected (subdivided, now two-hop, so even) edges but must cross
// an odd number of protected ones, which for a simple path forces exactly
// one traversal of the bottleneck.
package bottleneck
