package planar

import (
	"math"
	"sort"
)

// Point is a straight-line placement for a planar-graph vertex, used only
// to order incident edges clockwise; it carries no weight semantics of
// its own.
type Point struct {
	X, Y float64
}

// angleFrom returns the polar angle from center to p, negated so that
// increasing values walk clockwise (matching screen/plot coordinates
// where y grows downward is not assumed; this mirrors the teacher
// domain's own convention of negating the standard counter-clockwise
// polar angle).
func angleFrom(center, p Point) float64 {
	return -math.Atan2(p.Y-center.Y, p.X-center.X)
}

// sortClockwise orders the incident edge indices of vertex u clockwise
// by the angle from points[u] to points[edgeTo[i]].
func sortClockwise(center Point, points []Point, edgeTo []int, order []int) {
	sort.SliceStable(order, func(i, j int) bool {
		ai := angleFrom(center, points[edgeTo[order[i]]])
		aj := angleFrom(center, points[edgeTo[order[j]]])
		return ai < aj
	})
}
