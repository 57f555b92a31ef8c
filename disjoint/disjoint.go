package disjoint

import (
	"github.com/arborfell/oddpath/bottleneck"
	"github.com/arborfell/oddpath/graph"
	"github.com/arborfell/oddpath/oddpath"
	"github.com/arborfell/oddpath/weight"
)

// Result is the outcome of a Two Vertex-Disjoint Paths search: either no
// qualifying pair of paths exists, or one does, with Path1 running
// s1->t1 and Path2 running s2->t2.
type Result[W weight.Numeric] struct {
	found        bool
	cost         weight.Cost[W]
	path1, path2 []graph.BasicEdge[W]
}

// Impossible reports that no vertex-disjoint pair of paths exists.
func Impossible[W weight.Numeric]() Result[W] { return Result[W]{found: false} }

// Found reports whether a qualifying pair of paths exists.
func (r Result[W]) Found() bool { return r.found }

// Cost returns the combined weight of both paths. Only meaningful when
// Found is true.
func (r Result[W]) Cost() weight.Cost[W] { return r.cost }

// Path1 returns the s1->t1 path. Only meaningful when Found is true.
func (r Result[W]) Path1() []graph.BasicEdge[W] { return r.path1 }

// Path2 returns the s2->t2 path. Only meaningful when Found is true.
func (r Result[W]) Path2() []graph.BasicEdge[W] { return r.path2 }

// Solve finds vertex-disjoint paths s1->t1 and s2->t2 in g minimizing
// total weight, if any exist. opts are forwarded to the underlying
// odd-path solve (see oddpath.Trace).
func Solve[W weight.Numeric](g *graph.UndirectedGraph[W, graph.BasicEdge[W]], s1, t1, s2, t2 int, opts ...oddpath.Option) Result[W] {
	bridged := withBridge(g, t1, t2)

	res := bottleneck.Solve(bridged, s1, s2, t1, t2, opts...)
	if !res.Found() {
		return Impossible[W]()
	}

	path := res.Path()
	split := -1
	for i, e := range path {
		if e.To() == t1 {
			split = i
			break
		}
	}
	// t1 is an endpoint of the bridge edge, which the odd-path solver
	// always selects (it is the only edge protected from subdivision), so
	// path[split+1] is always that bridge edge itself: the path runs
	// s1->...->t1->t2->...->s2, and path[split+1] is dropped rather than
	// folded into either returned path since it never existed in g.
	path1 := append([]graph.BasicEdge[W]{}, path[:split+1]...)
	path2 := reversed(path[split+2:])

	return Result[W]{found: true, cost: res.Cost(), path1: path1, path2: path2}
}

// reversed returns a copy of path traversed back to front, with every
// edge individually reversed so the result again runs from-to-to.
func reversed[W weight.Numeric](path []graph.BasicEdge[W]) []graph.BasicEdge[W] {
	out := make([]graph.BasicEdge[W], len(path))
	for i, e := range path {
		out[len(path)-1-i] = graph.NewBasicEdge(e.To(), e.From(), e.Weight())
	}
	return out
}

// withBridge copies g, replacing any edge(s) directly between t1 and t2
// with a single zero-weight edge, so that Bottleneck can force a path
// through exactly that crossing.
func withBridge[W weight.Numeric](g *graph.UndirectedGraph[W, graph.BasicEdge[W]], t1, t2 int) *graph.UndirectedGraph[W, graph.BasicEdge[W]] {
	out := graph.New[W, graph.BasicEdge[W]](g.N())
	for u := 0; u < g.N(); u++ {
		for _, e := range g.Neighbors(u) {
			v := e.To()
			if u >= v {
				continue
			}
			if isBridgePair(u, v, t1, t2) {
				continue
			}
			out.AddEdge(e)
		}
	}
	var zero W
	out.AddEdge(graph.NewBasicEdge(t1, t2, zero))
	return out
}

func isBridgePair(u, v, t1, t2 int) bool {
	return (u == t1 && v == t2) || (u == t2 && v == t1)
}
