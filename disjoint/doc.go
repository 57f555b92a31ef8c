// Package disjoint solves Two Vertex-Disjoint Paths: given s1,t1,s2,t2,
// find vertex-disjoint paths s1->t1 and s2->t2 minimizing total weight.
//
// It reduces to Shortest Bottleneck Path by bridging t1 and t2 with a
// temporary zero-weight edge (replacing any edge already there) and
// solving Bottleneck(s1, s2, bridge) on the augmented graph: a shortest
// s1-s2-path forced through the bridge is exactly a shortest s1-t1-path
// immediately followed by a shortest t2-s2-path, since crossing the
// bridge is free and the rest of the path cannot revisit t1 or t2
// without losing simplicity.
package disjoint
