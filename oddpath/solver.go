package oddpath

import (
	"container/heap"
	"fmt"

	"github.com/arborfell/oddpath/base"
	"github.com/arborfell/oddpath/graph"
	"github.com/arborfell/oddpath/weight"
)

// solver holds the mutable state for a single Shortest Odd Path search,
// discarded once Solve returns.
type solver[W weight.Numeric, E graph.Edge[W]] struct {
	g       *graph.UndirectedGraph[W, E] // the mirror graph, on 2*origN vertices
	dPlus   []weight.Cost[W]
	dMinus  []weight.Cost[W]
	pred    []E
	hasPred []bool
	basis   *base.Base
	s, t    int
	origN   int

	completed []bool
	inCycle   []bool
	pq        eventPQ[W, E]
	opts      Options
}

func newSolver[W weight.Numeric, E graph.Edge[W]](g *graph.UndirectedGraph[W, E], s, t int, opts Options) *solver[W, E] {
	origN := g.N()
	mg := buildMirror(g, s, t)
	n := mg.N()

	dPlus := make([]weight.Cost[W], n)
	dMinus := make([]weight.Cost[W], n)
	for i := range dPlus {
		dPlus[i] = weight.Infinite[W]()
		dMinus[i] = weight.Infinite[W]()
	}

	sv := &solver[W, E]{
		g:         mg,
		dPlus:     dPlus,
		dMinus:    dMinus,
		pred:      make([]E, n),
		hasPred:   make([]bool, n),
		basis:     base.New(n),
		s:         s,
		t:         t,
		origN:     origN,
		completed: make([]bool, n),
		inCycle:   make([]bool, n),
		pq:        make(eventPQ[W, E], 0, n),
		opts:      opts,
	}

	var zero W
	sv.dPlus[s] = weight.Finite(zero)
	for _, e := range mg.Neighbors(s) {
		v := e.To()
		heap.Push(&sv.pq, event[W, E]{delta: e.Weight(), kind: eventVertex, vertex: v})
		sv.dMinus[v] = weight.Finite(e.Weight())
		sv.pred[v] = e
		sv.hasPred[v] = true
	}
	sv.completed[s] = true
	sv.completed[sv.mirror(s)] = true

	return sv
}

func (sv *solver[W, E]) mirror(u int) int { return mirrorOf(u, sv.origN) }

func (sv *solver[W, E]) predAt(u int) E {
	if !sv.hasPred[u] {
		panic(fmt.Sprintf("oddpath: no predecessor recorded for vertex %d", u))
	}
	return sv.pred[u]
}

// control runs one step of the main loop; it returns true when the
// search is done — either the shortest odd s-t-path has been found, or
// the queue emptied and none exists.
func (sv *solver[W, E]) control() bool {
	for sv.pq.Len() > 0 {
		top := sv.pq[0]
		var stale bool
		switch top.kind {
		case eventVertex:
			stale = sv.completed[top.vertex]
		case eventBlossom:
			stale = sv.basis.SameBase(top.edge.From(), top.edge.To())
		}
		if !stale {
			break
		}
		heap.Pop(&sv.pq)
	}

	if sv.pq.Len() == 0 {
		return true
	}

	top := heap.Pop(&sv.pq).(event[W, E])
	switch top.kind {
	case eventVertex:
		if top.vertex == sv.t {
			return true
		}
		sv.opts.emit(fmt.Sprintf("grow vertex %d at distance %v", top.vertex, top.delta))
		sv.grow(top.vertex, top.delta)
	case eventBlossom:
		sv.opts.emit(fmt.Sprintf("blossom via edge %v at distance %v", top.edge, top.delta))
		sv.blossom(top.edge, top.delta)
	}
	return false
}

func (sv *solver[W, E]) grow(l int, delta W) {
	k := sv.mirror(l)
	sv.dPlus[k] = weight.Finite(delta)
	sv.scan(k)
}

// scan marks u completed and relaxes every incident edge, either
// improving a neighbor's inner label or, if the neighbor is already
// outer in a different blossom, registering a BlossomEvent for the pair.
func (sv *solver[W, E]) scan(u int) {
	sv.completed[u] = true
	if sv.dPlus[u].IsInfinite() {
		panic(fmt.Sprintf("oddpath: scan(%d) called but d_plus[%d] is undefined", u, u))
	}

	for _, e := range sv.g.Neighbors(u) {
		v := e.To()
		newDistV := sv.dPlus[u].Add(weight.Finite(e.Weight()))

		if !sv.completed[v] {
			if !newDistV.Less(sv.dMinus[v]) {
				continue
			}
			sv.dMinus[v] = newDistV
			sv.pred[v] = e
			sv.hasPred[v] = true
			heap.Push(&sv.pq, event[W, E]{delta: newDistV.MustValue(), kind: eventVertex, vertex: v})
			continue
		}

		if sv.dPlus[v].IsFinite() && !sv.basis.SameBase(u, v) {
			delta := newDistV.Add(sv.dPlus[v])
			heap.Push(&sv.pq, event[W, E]{delta: delta.MustValue(), kind: eventBlossom, edge: e})
			if newDistV.Less(sv.dMinus[v]) {
				sv.dMinus[v] = newDistV
				sv.pred[v] = e
				sv.hasPred[v] = true
			}
		}
	}
}

// blossom contracts the odd cycle discovered by edge e, then scans every
// mirror vertex the contraction promotes to outer.
func (sv *solver[W, E]) blossom(e E, delta W) {
	b, p1, p2 := sv.backtrackBlossom(e)

	promoted1 := sv.setBlossomValues(p1)
	promoted2 := sv.setBlossomValues(p2)

	sv.setEdgeBases(b, p1)
	sv.setEdgeBases(b, p2)

	for _, u := range promoted1 {
		sv.scan(u)
	}
	for _, v := range promoted2 {
		sv.scan(v)
	}
}

// backtrackBlossom walks two paths back from e's endpoints toward s,
// alternating a step to the mirror and a step to its predecessor's base,
// until one path reaches a vertex the other has already marked. That
// shared vertex is the blossom's base; the paths are truncated there.
func (sv *solver[W, E]) backtrackBlossom(e E) (int, []E, []E) {
	p1 := []E{e.Reverse().(E)}
	p2 := []E{e}

	u := sv.basis.GetBase(e.To())
	v := sv.basis.GetBase(e.From())
	sv.inCycle[u] = true
	sv.inCycle[v] = true

	for {
		if u != sv.s {
			u = sv.basis.GetBase(sv.mirror(u))
			sv.inCycle[u] = true
			edge := sv.predAt(u)
			u = sv.basis.GetBase(edge.From())
			p1 = append(p1, edge)

			if sv.inCycle[u] {
				p1 = p1[:len(p1)-1]
				sv.inCycle[u] = false
				for len(p2) > 0 {
					last := p2[len(p2)-1]
					vv := sv.basis.GetBase(last.From())
					sv.inCycle[vv] = false
					p2 = p2[:len(p2)-1]
					if vv == u {
						break
					}
				}
				return u, p1, p2
			}
			sv.inCycle[u] = true
		}

		if v != sv.s {
			v = sv.basis.GetBase(sv.mirror(v))
			sv.inCycle[v] = true
			edge := sv.predAt(v)
			v = sv.basis.GetBase(edge.From())
			p2 = append(p2, edge)

			if sv.inCycle[v] {
				p2 = p2[:len(p2)-1]
				sv.inCycle[v] = false
				for len(p1) > 0 {
					last := p1[len(p1)-1]
					uu := sv.basis.GetBase(last.From())
					sv.inCycle[uu] = false
					p1 = p1[:len(p1)-1]
					if uu == v {
						break
					}
				}
				return v, p1, p2
			}
			sv.inCycle[v] = true
		}
	}
}

// setEdgeBases re-points every vertex on path (and its mirror) at base b,
// completing the contraction.
func (sv *solver[W, E]) setEdgeBases(b int, path []E) {
	for _, e := range path {
		u := e.From()
		sv.basis.SetBase(u, b)
		sv.basis.SetBase(sv.mirror(u), b)
	}
}

// setBlossomValues recomputes d_minus along one half-path of a newly
// discovered odd cycle and promotes any mirror vertex whose new d_minus
// beats its current d_plus, returning the promoted mirrors for scanning.
func (sv *solver[W, E]) setBlossomValues(path []E) []int {
	var promoted []int
	for _, e := range path {
		u, v, w := e.From(), e.To(), e.Weight()
		sv.inCycle[u] = false
		sv.inCycle[v] = false

		cand := sv.dPlus[v].Add(weight.Finite(w))
		if cand.Less(sv.dMinus[u]) {
			sv.dMinus[u] = cand
			sv.pred[u] = e.Reverse().(E)
			sv.hasPred[u] = true
		}

		m := sv.mirror(u)
		if sv.dMinus[u].Less(sv.dPlus[m]) {
			sv.dPlus[m] = sv.dMinus[u]
			promoted = append(promoted, m)
		}
	}
	return promoted
}
