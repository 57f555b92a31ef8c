package bottleneck

import (
	"github.com/arborfell/oddpath/graph"
	"github.com/arborfell/oddpath/oddpath"
	"github.com/arborfell/oddpath/query"
	"github.com/arborfell/oddpath/split"
	"github.com/arborfell/oddpath/weight"
)

// Solve finds the shortest s-t-path in g that traverses the edge between
// u and v, if one exists. u and v must be adjacent in g. opts are
// forwarded to the underlying odd-path solve (see oddpath.Trace).
func Solve[W weight.Numeric, E graph.Edge[W]](g *graph.UndirectedGraph[W, E], s, t, u, v int, opts ...oddpath.Option) query.PathResult[W, E] {
	r := split.Split(g, []split.Edge{{U: u, V: v}})

	res := oddpath.Solve(r.Split, s, t, opts...)
	if !res.Found() {
		return query.Impossible[W, E]()
	}
	return query.Possible[W, E](res.Cost(), r.Reconstruct(res.Path()))
}
