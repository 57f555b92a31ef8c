package graph

import (
	"fmt"

	"github.com/arborfell/oddpath/weight"
)

// UndirectedGraph is an adjacency-list container keyed by vertex index
// in [0,n). Every stored edge e at adj[e.From()] has a matching reverse
// edge at adj[e.To()] — AddEdge maintains this invariant, so callers
// never add a reverse edge by hand. Built once and read many times: no
// solver in this module mutates a graph it was handed.
type UndirectedGraph[W weight.Numeric, E Edge[W]] struct {
	adj [][]E
	m   int
}

// New allocates an empty graph on n vertices.
func New[W weight.Numeric, E Edge[W]](n int) *UndirectedGraph[W, E] {
	return &UndirectedGraph[W, E]{adj: make([][]E, n)}
}

// N returns the vertex count.
func (g *UndirectedGraph[W, E]) N() int { return len(g.adj) }

// M returns the (unordered) edge count.
func (g *UndirectedGraph[W, E]) M() int { return g.m }

// Neighbors returns the edges incident to u, in insertion order.
func (g *UndirectedGraph[W, E]) Neighbors(u int) []E { return g.adj[u] }

// AddEdge inserts e and its reverse, bumping the edge count once. Callers
// build each undirected edge exactly once; AddEdge derives the mirrored
// adjacency-list entry via e.Reverse().
func (g *UndirectedGraph[W, E]) AddEdge(e E) {
	rev := e.Reverse().(E)
	g.adj[e.From()] = append(g.adj[e.From()], e)
	g.adj[rev.From()] = append(g.adj[rev.From()], rev)
	g.m++
}

// IsAdjacent reports whether some edge u->v exists.
func (g *UndirectedGraph[W, E]) IsAdjacent(u, v int) bool {
	for _, e := range g.adj[u] {
		if e.To() == v {
			return true
		}
	}
	return false
}

// FindEdges returns every stored edge from u to v (plural to account for
// parallel edges).
func (g *UndirectedGraph[W, E]) FindEdges(u, v int) []E {
	var out []E
	for _, e := range g.adj[u] {
		if e.To() == v {
			out = append(out, e)
		}
	}
	return out
}

// String renders the adjacency list, mirroring the teacher's Debug
// formatting of UndirectedGraph for troubleshooting small instances.
func (g *UndirectedGraph[W, E]) String() string {
	s := fmt.Sprintf("UndirectedGraph(n=%d, m=%d):\n", g.N(), g.M())
	for u := range g.adj {
		s += fmt.Sprintf("  N(%d) = %v\n", u, g.adj[u])
	}
	return s
}
