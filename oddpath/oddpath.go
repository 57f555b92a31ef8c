package oddpath

import (
	"github.com/arborfell/oddpath/graph"
	"github.com/arborfell/oddpath/query"
	"github.com/arborfell/oddpath/weight"
)

// Solve finds the shortest simple s-t-path in g that uses an odd number
// of edges, if one exists. s and t must be distinct: a zero-length path
// uses an even (zero) number of edges, so s==t is Impossible by
// definition.
func Solve[W weight.Numeric, E graph.Edge[W]](g *graph.UndirectedGraph[W, E], s, t int, opts ...Option) query.PathResult[W, E] {
	if s == t {
		return query.Impossible[W, E]()
	}

	sv := newSolver(g, s, t, DefaultOptions(opts...))
	for !sv.control() {
	}

	if sv.dMinus[sv.t].IsInfinite() {
		return query.Impossible[W, E]()
	}
	return sv.reconstruct()
}

// reconstruct follows pred back from t through mirror vertices to s,
// translating any mirror-side edge back into the original vertex range.
func (sv *solver[W, E]) reconstruct() query.PathResult[W, E] {
	curr := sv.predAt(sv.t)
	cost := weight.Finite(curr.Weight())
	path := []E{curr}

	for curr.From() != sv.s {
		curr = sv.predAt(sv.mirror(curr.From()))
		cost = cost.Add(weight.Finite(curr.Weight()))
		if curr.From() < sv.origN {
			path = append(path, curr)
		} else {
			path = append(path, curr.ShiftBy(-sv.origN).(E))
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return query.Possible[W, E](cost, path)
}
