package search

import (
	"github.com/arborfell/oddpath/graph"
	"github.com/arborfell/oddpath/weight"
)

// BFSResult holds the distances (in hops) and predecessor edges computed
// by a single BFS run from one source vertex.
type BFSResult[W weight.Numeric, E graph.Edge[W]] struct {
	source int
	dist   []int
	pred   []E
}

// Reached reports whether v was visited.
func (r *BFSResult[W, E]) Reached(v int) bool { return r.dist[v] >= 0 }

// Dist returns the hop-distance to v, or -1 if v was never reached.
func (r *BFSResult[W, E]) Dist(v int) int { return r.dist[v] }

// PathTo reconstructs the edge sequence from the source to v, oldest
// edge first. It returns nil if v is unreached or is the source itself.
func (r *BFSResult[W, E]) PathTo(v int) []E {
	if !r.Reached(v) || v == r.source {
		return nil
	}
	var path []E
	for v != r.source {
		path = append(path, r.pred[v])
		v = r.pred[v].From()
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// BFS explores g from s in breadth-first order, optionally skipping one
// edge (see AvoidEdge). Edge weights are ignored; every hop costs 1.
func BFS[W weight.Numeric, E graph.Edge[W]](g *graph.UndirectedGraph[W, E], s int, opts ...Option) *BFSResult[W, E] {
	cfg := DefaultOptions(opts...)

	n := g.N()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	pred := make([]E, n)

	dist[s] = 0
	queue := make([]int, 0, n)
	queue = append(queue, s)

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, e := range g.Neighbors(u) {
			v := e.To()
			if cfg.skips(u, v) {
				continue
			}
			if dist[v] >= 0 {
				continue
			}
			dist[v] = dist[u] + 1
			pred[v] = e
			queue = append(queue, v)
		}
	}

	return &BFSResult[W, E]{source: s, dist: dist, pred: pred}
}
