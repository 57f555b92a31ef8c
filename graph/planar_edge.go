package graph

import (
	"fmt"

	"github.com/arborfell/oddpath/weight"
)

// PlanarEdge extends BasicEdge with the left/right face ids produced by
// an embedding (see package planar). RotateRight turns a real half-edge
// into its dual counterpart: a PlanarEdge whose endpoints are the
// original right then left face, and whose faces are the original to
// then from vertex.
type PlanarEdge[W weight.Numeric] struct {
	from, to    int
	weight      W
	left, right int
}

// NewPlanarEdge builds a PlanarEdge with the given endpoints, weight and
// (already-determined) left/right face ids.
func NewPlanarEdge[W weight.Numeric](u, v int, w W, left, right int) PlanarEdge[W] {
	return PlanarEdge[W]{from: u, to: v, weight: w, left: left, right: right}
}

func (e PlanarEdge[W]) From() int   { return e.from }
func (e PlanarEdge[W]) To() int     { return e.to }
func (e PlanarEdge[W]) Weight() W   { return e.weight }
func (e PlanarEdge[W]) Left() int   { return e.left }
func (e PlanarEdge[W]) Right() int  { return e.right }

func (e PlanarEdge[W]) Reverse() Edge[W] {
	return PlanarEdge[W]{from: e.to, to: e.from, weight: e.weight, left: e.right, right: e.left}
}

func (e PlanarEdge[W]) Subdivide(mid int) (Edge[W], Edge[W]) {
	var zero W
	first := PlanarEdge[W]{from: e.from, to: mid, weight: e.weight, left: e.left, right: e.right}
	second := PlanarEdge[W]{from: mid, to: e.to, weight: zero, left: e.left, right: e.right}
	return first, second
}

func (e PlanarEdge[W]) ShiftBy(offset int) Edge[W] {
	return PlanarEdge[W]{from: e.from + offset, to: e.to + offset, weight: e.weight, left: e.left, right: e.right}
}

// RotateRight produces the dual edge corresponding to this real
// half-edge: endpoints become (right, left) and faces become (to, from).
// Applying RotateRight four times returns to the original edge.
func (e PlanarEdge[W]) RotateRight() PlanarEdge[W] {
	return PlanarEdge[W]{
		from:   e.right,
		to:     e.left,
		weight: e.weight,
		left:   e.to,
		right:  e.from,
	}
}

func (e PlanarEdge[W]) String() string {
	return fmt.Sprintf("%d -%v-> %d (L=%d,R=%d)", e.from, e.weight, e.to, e.left, e.right)
}
