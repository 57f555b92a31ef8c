package oddpath

import (
	"github.com/arborfell/oddpath/graph"
	"github.com/arborfell/oddpath/weight"
)

// mirrorOf maps a vertex in [0,2n) to its twin: u+n below n, u-n above.
func mirrorOf(u, n int) int {
	if u < n {
		return u + n
	}
	return u - n
}

// buildMirror constructs the mirror graph on 2n vertices: every edge of
// g is carried over unchanged, and every edge whose endpoints are both
// different from s and t additionally gets a shifted twin connecting
// the two mirror vertices. s and t are never mirrored, so their twins
// stay isolated.
func buildMirror[W weight.Numeric, E graph.Edge[W]](g *graph.UndirectedGraph[W, E], s, t int) *graph.UndirectedGraph[W, E] {
	n := g.N()
	mg := graph.New[W, E](2 * n)

	for u := 0; u < n; u++ {
		for _, e := range g.Neighbors(u) {
			v := e.To()
			if v < u {
				continue
			}
			mg.AddEdge(e)
			if u != s && u != t && v != s && v != t {
				mg.AddEdge(e.ShiftBy(n).(E))
			}
		}
	}
	return mg
}
