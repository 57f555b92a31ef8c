package graph

import (
	"fmt"

	"github.com/arborfell/oddpath/weight"
)

// BasicEdge is the plain {from, to, weight} edge used by general
// (non-planar) graphs.
type BasicEdge[W weight.Numeric] struct {
	from, to int
	weight   W
}

// NewBasicEdge builds a BasicEdge from u to v with the given weight.
func NewBasicEdge[W weight.Numeric](u, v int, w W) BasicEdge[W] {
	return BasicEdge[W]{from: u, to: v, weight: w}
}

func (e BasicEdge[W]) From() int    { return e.from }
func (e BasicEdge[W]) To() int      { return e.to }
func (e BasicEdge[W]) Weight() W    { return e.weight }
func (e BasicEdge[W]) Reverse() Edge[W] {
	return BasicEdge[W]{from: e.to, to: e.from, weight: e.weight}
}

func (e BasicEdge[W]) Subdivide(mid int) (Edge[W], Edge[W]) {
	var zero W
	return BasicEdge[W]{from: e.from, to: mid, weight: e.weight},
		BasicEdge[W]{from: mid, to: e.to, weight: zero}
}

func (e BasicEdge[W]) ShiftBy(offset int) Edge[W] {
	return BasicEdge[W]{from: e.from + offset, to: e.to + offset, weight: e.weight}
}

func (e BasicEdge[W]) String() string {
	return fmt.Sprintf("%d -%v-> %d", e.from, e.weight, e.to)
}
