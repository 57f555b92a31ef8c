package search

import (
	"container/heap"

	"github.com/arborfell/oddpath/graph"
	"github.com/arborfell/oddpath/weight"
)

// DijkstraResult holds the shortest distances and predecessor edges
// computed by a single Dijkstra run from one source vertex.
type DijkstraResult[W weight.Numeric, E graph.Edge[W]] struct {
	source int
	dist   []weight.Cost[W]
	pred   []E
}

// Dist returns the shortest-path cost to v (Infinite if unreachable).
func (r *DijkstraResult[W, E]) Dist(v int) weight.Cost[W] { return r.dist[v] }

// PathTo reconstructs the edge sequence from the source to v, oldest
// edge first, or nil if v is unreachable or is the source.
func (r *DijkstraResult[W, E]) PathTo(v int) []E {
	if r.dist[v].IsInfinite() || v == r.source {
		return nil
	}
	var path []E
	for v != r.source {
		e := r.pred[v]
		path = append(path, e)
		v = e.From()
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// item is a (vertex, tentative distance) pair stored in the heap. As in
// the teacher's lazy-decrease-key Dijkstra, an improved distance is
// pushed as a new item rather than updating one in place; a popped item
// is checked against the current best-known distance and discarded if
// it is stale.
type item[W weight.Numeric] struct {
	vertex int
	dist   W
}

type itemPQ[W weight.Numeric] []item[W]

func (pq itemPQ[W]) Len() int            { return len(pq) }
func (pq itemPQ[W]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq itemPQ[W]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *itemPQ[W]) Push(x interface{}) { *pq = append(*pq, x.(item[W])) }
func (pq *itemPQ[W]) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

// Dijkstra computes shortest distances from s to every vertex in g,
// optionally skipping one edge (see AvoidEdge). Edge weights must be
// non-negative, which weight.Numeric's callers are expected to enforce
// at parse time.
func Dijkstra[W weight.Numeric, E graph.Edge[W]](g *graph.UndirectedGraph[W, E], s int, opts ...Option) *DijkstraResult[W, E] {
	cfg := DefaultOptions(opts...)

	n := g.N()
	dist := make([]weight.Cost[W], n)
	for i := range dist {
		dist[i] = weight.Infinite[W]()
	}
	pred := make([]E, n)
	done := make([]bool, n)

	dist[s] = weight.Finite(zeroOf[W]())

	pq := make(itemPQ[W], 0, n)
	heap.Init(&pq)
	heap.Push(&pq, item[W]{vertex: s, dist: zeroOf[W]()})

	for pq.Len() > 0 {
		top := heap.Pop(&pq).(item[W])
		u := top.vertex
		if done[u] {
			continue
		}
		done[u] = true

		for _, e := range g.Neighbors(u) {
			v := e.To()
			if cfg.skips(u, v) || done[v] {
				continue
			}
			cand := weight.Finite(top.dist + e.Weight())
			if !cand.Less(dist[v]) {
				continue
			}
			dist[v] = cand
			pred[v] = e
			heap.Push(&pq, item[W]{vertex: v, dist: cand.MustValue()})
		}
	}

	return &DijkstraResult[W, E]{source: s, dist: dist, pred: pred}
}

func zeroOf[W weight.Numeric]() W {
	var z W
	return z
}
