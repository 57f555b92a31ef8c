package diversion

import (
	"fmt"

	"github.com/arborfell/oddpath/graph"
	"github.com/arborfell/oddpath/oddpath"
	"github.com/arborfell/oddpath/planar"
	"github.com/arborfell/oddpath/search"
	"github.com/arborfell/oddpath/split"
	"github.com/arborfell/oddpath/weight"
)

// Result is the outcome of a Network Diversion search: either no cut
// exists (which cannot happen for a connected planar graph, since in the
// worst case every edge at du or dv suffices) or one does, of minimum
// total weight.
type Result[W weight.Numeric] struct {
	found bool
	cost  weight.Cost[W]
	edges []graph.PlanarEdge[W]
}

func Impossible[W weight.Numeric]() Result[W] { return Result[W]{found: false} }

func Possible[W weight.Numeric](cost weight.Cost[W], edges []graph.PlanarEdge[W]) Result[W] {
	return Result[W]{found: true, cost: cost, edges: edges}
}

// Found reports whether a diversion set was computed.
func (r Result[W]) Found() bool { return r.found }

// Cost returns the diversion set's total weight. Only meaningful when
// Found is true.
func (r Result[W]) Cost() weight.Cost[W] { return r.cost }

// Edges returns the diversion set: the real edges to delete. Only
// meaningful when Found is true; an empty (non-nil-checked) slice with
// zero cost means d already suffices on its own.
func (r Result[W]) Edges() []graph.PlanarEdge[W] { return r.edges }

// Solve finds the cheapest edge set in pg whose removal forces every
// remaining s-t-path through the edge (du,dv). opts are forwarded to the
// underlying odd-path solve (see oddpath.Trace).
func Solve[W weight.Numeric](pg *planar.Graph[W], s, t, du, dv int, opts ...oddpath.Option) Result[W] {
	d := findEdge(pg.Real(), du, dv)

	bfs := search.BFS(pg.Real(), s, search.AvoidEdge(du, dv))
	if !bfs.Reached(t) {
		var zero W
		return Possible[W](weight.Finite(zero), nil)
	}
	detour := bfs.PathTo(t)

	protected := make([]split.Edge, len(detour))
	for i, e := range detour {
		dual := e.RotateRight()
		protected[i] = split.Edge{U: dual.From(), V: dual.To()}
	}

	r := split.Split(pg.Dual(), protected)
	res := oddpath.Solve(r.Split, d.Left(), d.Right(), opts...)
	if !res.Found() {
		return Impossible[W]()
	}

	dualPath := r.Reconstruct(res.Path())
	real := make([]graph.PlanarEdge[W], len(dualPath))
	for i, e := range dualPath {
		real[i] = e.RotateRight()
	}

	return Possible[W](res.Cost(), real)
}

func findEdge[W weight.Numeric](g *graph.UndirectedGraph[W, graph.PlanarEdge[W]], u, v int) graph.PlanarEdge[W] {
	for _, e := range g.Neighbors(u) {
		if e.To() == v {
			return e
		}
	}
	panic(fmt.Sprintf("diversion: no edge (%d, %d) in graph", u, v))
}
