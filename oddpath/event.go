package oddpath

import (
	"github.com/arborfell/oddpath/graph"
	"github.com/arborfell/oddpath/weight"
)

// eventKind distinguishes the two event shapes sharing the priority
// queue. VertexEvent sorts before BlossomEvent at equal cost: growing a
// vertex is at least as cheap to act on and unblocks more of the
// remaining queue than forming a blossom would.
type eventKind uint8

const (
	eventVertex eventKind = iota
	eventBlossom
)

// event is either a VertexEvent (grow vertex at outer-distance delta) or
// a BlossomEvent (two outer vertices in different blossoms become
// joinable via edge at combined cost delta).
type event[W weight.Numeric, E graph.Edge[W]] struct {
	delta  W
	kind   eventKind
	vertex int
	edge   E
}

type eventPQ[W weight.Numeric, E graph.Edge[W]] []event[W, E]

func (pq eventPQ[W, E]) Len() int { return len(pq) }

func (pq eventPQ[W, E]) Less(i, j int) bool {
	if pq[i].delta != pq[j].delta {
		return pq[i].delta < pq[j].delta
	}
	return pq[i].kind < pq[j].kind
}

func (pq eventPQ[W, E]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *eventPQ[W, E]) Push(x interface{}) { *pq = append(*pq, x.(event[W, E])) }

func (pq *eventPQ[W, E]) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
