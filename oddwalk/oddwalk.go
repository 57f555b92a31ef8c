package oddwalk

import (
	"container/heap"

	"github.com/arborfell/oddpath/graph"
	"github.com/arborfell/oddpath/query"
	"github.com/arborfell/oddpath/weight"
)

// entry is a (tentative distance, parity, vertex) triple in the shared
// layered priority queue; parity false means "even number of edges so
// far", true means "odd".
type entry[W weight.Numeric] struct {
	dist W
	odd  bool
	vtx  int
}

type entryPQ[W weight.Numeric] []entry[W]

func (pq entryPQ[W]) Len() int            { return len(pq) }
func (pq entryPQ[W]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq entryPQ[W]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *entryPQ[W]) Push(x interface{}) { *pq = append(*pq, x.(entry[W])) }
func (pq *entryPQ[W]) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

// Solve finds the shortest s-t-walk in g that uses an odd number of
// edges. Unlike package oddpath's Shortest Odd Path, a walk may revisit
// vertices, so two layered Dijkstra labels per vertex — one reached by
// an even number of edges, one by an odd number — suffice; no blossom
// contraction is needed.
func Solve[W weight.Numeric, E graph.Edge[W]](g *graph.UndirectedGraph[W, E], s, t int) query.PathResult[W, E] {
	n := g.N()
	var zero W

	evenDist := make([]weight.Cost[W], n)
	oddDist := make([]weight.Cost[W], n)
	for i := range evenDist {
		evenDist[i] = weight.Infinite[W]()
		oddDist[i] = weight.Infinite[W]()
	}
	evenDist[s] = weight.Finite(zero)

	evenPrev := make([]E, n)
	oddPrev := make([]E, n)
	evenDone := make([]bool, n)
	oddDone := make([]bool, n)

	pq := make(entryPQ[W], 0, n)
	heap.Init(&pq)
	heap.Push(&pq, entry[W]{dist: zero, odd: false, vtx: s})

	for pq.Len() > 0 {
		top := heap.Pop(&pq).(entry[W])
		distU, u := top.dist, top.vtx

		if !top.odd {
			if evenDone[u] {
				continue
			}
			evenDone[u] = true
			for _, e := range g.Neighbors(u) {
				distV := distU + e.Weight()
				if weight.Finite(distV).Less(oddDist[e.To()]) {
					oddDist[e.To()] = weight.Finite(distV)
					oddPrev[e.To()] = e
					heap.Push(&pq, entry[W]{dist: distV, odd: true, vtx: e.To()})
				}
			}
		} else {
			if oddDone[u] {
				continue
			}
			oddDone[u] = true
			for _, e := range g.Neighbors(u) {
				distV := distU + e.Weight()
				if weight.Finite(distV).Less(evenDist[e.To()]) {
					evenDist[e.To()] = weight.Finite(distV)
					evenPrev[e.To()] = e
					heap.Push(&pq, entry[W]{dist: distV, odd: false, vtx: e.To()})
				}
			}
		}

		if oddDone[t] {
			break
		}
	}

	if oddDist[t].IsInfinite() {
		return query.Impossible[W, E]()
	}

	path := []E{oddPrev[t]}
	v := path[0].From()
	for v != s {
		e := evenPrev[v]
		o := oddPrev[e.From()]
		v = o.From()
		path = append(path, e, o)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return query.Possible[W, E](oddDist[t], path)
}
