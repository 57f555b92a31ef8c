package planar

import (
	"fmt"

	"github.com/arborfell/oddpath/graph"
	"github.com/arborfell/oddpath/weight"
)

// Graph is a planarized graph: the original ("real") embedding plus its
// dual, both stored as graph.UndirectedGraph[W, graph.PlanarEdge[W]] so
// every solver built against the real-graph type works unchanged against
// the dual.
type Graph[W weight.Numeric] struct {
	points []Point
	real   *graph.UndirectedGraph[W, graph.PlanarEdge[W]]
	dual   *graph.UndirectedGraph[W, graph.PlanarEdge[W]]
}

// Real returns the embedded graph as the caller supplied it.
func (g *Graph[W]) Real() *graph.UndirectedGraph[W, graph.PlanarEdge[W]] { return g.real }

// Dual returns the planar dual: one vertex per face, one edge crossing
// each real edge.
func (g *Graph[W]) Dual() *graph.UndirectedGraph[W, graph.PlanarEdge[W]] { return g.dual }

// N, M and F are the vertex, edge and face counts, related by Euler's
// formula N - M + F = 2.
func (g *Graph[W]) N() int { return g.real.N() }
func (g *Graph[W]) M() int { return g.real.M() }
func (g *Graph[W]) F() int { return g.dual.N() }

// Point returns the placement of vertex u.
func (g *Graph[W]) Point(u int) Point { return g.points[u] }

func (g *Graph[W]) String() string {
	return fmt.Sprintf("Graph(n=%d, m=%d, f=%d):\nReal:\n%v\nDual:\n%v", g.N(), g.M(), g.F(), g.real, g.dual)
}
