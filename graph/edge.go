package graph

import "github.com/arborfell/oddpath/weight"

// Edge is the capability set every edge representation in this module
// exposes: endpoints, weight, reversal, subdivision, and index shifting.
// Concrete fields are never exposed outside this package; callers only
// see this interface and the named constructors below.
type Edge[W weight.Numeric] interface {
	// From returns the source vertex index.
	From() int
	// To returns the destination vertex index.
	To() int
	// Weight returns the edge's weight.
	Weight() W
	// Reverse returns the edge with endpoints swapped (and, for
	// PlanarEdge, left/right faces swapped too).
	Reverse() Edge[W]
	// Subdivide replaces this edge with two edges (From()->mid) and
	// (mid->To()) whose weights sum to Weight(). The "all weight on the
	// first half, zero on the second" policy avoids rounding error for
	// non-integer weight kinds; correctness of every reduction that uses
	// this only depends on the sum being preserved.
	Subdivide(mid int) (Edge[W], Edge[W])
	// ShiftBy renumbers both endpoints by offset, used to build the
	// mirror copy of a graph.
	ShiftBy(offset int) Edge[W]
}
