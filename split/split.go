package split

import (
	"github.com/arborfell/oddpath/graph"
	"github.com/arborfell/oddpath/weight"
)

// Edge is the minimal vertex-pair shape used to name a protected edge;
// direction does not matter, Split treats (u,v) and (v,u) as the same
// edge.
type Edge struct{ U, V int }

func key(u, v int) Edge {
	if v < u {
		return Edge{v, u}
	}
	return Edge{u, v}
}

// Result holds a split graph together with enough information to map a
// path over it back to a path over the original graph.
type Result[W weight.Numeric, E graph.Edge[W]] struct {
	Split *graph.UndirectedGraph[W, graph.BasicEdge[W]]
	orig  *graph.UndirectedGraph[W, E]
	origN int
}

// Split subdivides every edge of g not named in protected, returning the
// new graph (original vertices 0..g.N() unchanged, midpoints appended
// from g.N() onward) and a Result that can reconstruct original-edge
// paths from it.
func Split[W weight.Numeric, E graph.Edge[W]](g *graph.UndirectedGraph[W, E], protected []Edge) *Result[W, E] {
	bans := make(map[Edge]bool, len(protected))
	for _, e := range protected {
		bans[key(e.U, e.V)] = true
	}

	n := g.N() + g.M() - len(bans)
	out := graph.New[W, graph.BasicEdge[W]](n)
	mid := g.N()

	for u := 0; u < g.N(); u++ {
		for _, e := range g.Neighbors(u) {
			v := e.To()
			if u >= v {
				continue
			}
			if bans[key(u, v)] {
				out.AddEdge(graph.NewBasicEdge(u, v, e.Weight()))
				continue
			}
			var zero W
			out.AddEdge(graph.NewBasicEdge(u, mid, e.Weight()))
			out.AddEdge(graph.NewBasicEdge(mid, v, zero))
			mid++
		}
	}

	return &Result[W, E]{Split: out, orig: g, origN: g.N()}
}

// Reconstruct folds a path of split-graph edges (as returned by a solver
// run over Result.Split) back into a path over the original edge type,
// collapsing each two-hop midpoint detour into the single original edge
// it replaced.
func (r *Result[W, E]) Reconstruct(path []graph.BasicEdge[W]) []E {
	if len(path) == 0 {
		return nil
	}

	verts := make([]int, 0, len(path)+1)
	verts = append(verts, path[0].From())
	for _, e := range path {
		verts = append(verts, e.To())
	}

	var out []E
	for i := 0; i < len(verts)-1; i++ {
		a := verts[i]
		b := verts[i+1]
		if b >= r.origN {
			// b is a midpoint: this hop and the next together replace one
			// original edge between a and verts[i+2].
			c := verts[i+2]
			out = append(out, r.originalEdge(a, c))
			i++
			continue
		}
		if a >= r.origN {
			// Already consumed when we stepped onto the midpoint.
			continue
		}
		out = append(out, r.originalEdge(a, b))
	}
	return out
}

func (r *Result[W, E]) originalEdge(u, v int) E {
	for _, e := range r.orig.Neighbors(u) {
		if e.To() == v {
			return e
		}
	}
	var zero E
	return zero
}
