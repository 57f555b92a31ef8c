package builder

import (
	"fmt"

	"github.com/arborfell/oddpath/graph"
	"github.com/arborfell/oddpath/weight"
)

// Path builds the simple path P_n on vertices 0..n-1 (n >= 2), with edge
// (i-1,i) for i=1..n-1, each weighted w.
func Path[W weight.Numeric](n int, w W) (*graph.UndirectedGraph[W, graph.BasicEdge[W]], error) {
	if n < 2 {
		return nil, fmt.Errorf("builder: Path(n=%d): %w", n, ErrTooFewVertices)
	}
	g := graph.New[W, graph.BasicEdge[W]](n)
	for i := 1; i < n; i++ {
		g.AddEdge(graph.NewBasicEdge(i-1, i, w))
	}
	return g, nil
}

// Cycle builds the simple cycle C_n on vertices 0..n-1 (n >= 3), closing
// the ring with an edge from n-1 back to 0.
func Cycle[W weight.Numeric](n int, w W) (*graph.UndirectedGraph[W, graph.BasicEdge[W]], error) {
	if n < 3 {
		return nil, fmt.Errorf("builder: Cycle(n=%d): %w", n, ErrTooFewVertices)
	}
	g := graph.New[W, graph.BasicEdge[W]](n)
	for i := 0; i < n; i++ {
		g.AddEdge(graph.NewBasicEdge(i, (i+1)%n, w))
	}
	return g, nil
}

// Complete builds the complete graph K_n on vertices 0..n-1 (n >= 1):
// every unordered pair {i,j}, i<j, connected once.
func Complete[W weight.Numeric](n int, w W) (*graph.UndirectedGraph[W, graph.BasicEdge[W]], error) {
	if n < 1 {
		return nil, fmt.Errorf("builder: Complete(n=%d): %w", n, ErrTooFewVertices)
	}
	g := graph.New[W, graph.BasicEdge[W]](n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(graph.NewBasicEdge(i, j, w))
		}
	}
	return g, nil
}

// centerVertex is the fixed hub index Star and Wheel attach their spokes
// to: the last vertex, n-1, keeping the rim/leaves at 0..n-2.
func centerVertex(n int) int { return n - 1 }

// Star builds a star on n vertices (n >= 2): a hub at n-1 with spokes to
// every leaf 0..n-2.
func Star[W weight.Numeric](n int, w W) (*graph.UndirectedGraph[W, graph.BasicEdge[W]], error) {
	if n < 2 {
		return nil, fmt.Errorf("builder: Star(n=%d): %w", n, ErrTooFewVertices)
	}
	g := graph.New[W, graph.BasicEdge[W]](n)
	center := centerVertex(n)
	for leaf := 0; leaf < center; leaf++ {
		g.AddEdge(graph.NewBasicEdge(center, leaf, w))
	}
	return g, nil
}

// Wheel builds a wheel on n vertices (n >= 4): an outer cycle C_{n-1} on
// 0..n-2 plus a hub at n-1 spoked to every rim vertex.
func Wheel[W weight.Numeric](n int, w W) (*graph.UndirectedGraph[W, graph.BasicEdge[W]], error) {
	if n < 4 {
		return nil, fmt.Errorf("builder: Wheel(n=%d): %w", n, ErrTooFewVertices)
	}
	g, err := Cycle(n-1, w)
	if err != nil {
		return nil, fmt.Errorf("builder: Wheel(n=%d): base cycle: %w", n, err)
	}
	grown := graph.New[W, graph.BasicEdge[W]](n)
	for u := 0; u < g.N(); u++ {
		for _, e := range g.Neighbors(u) {
			if e.From() < e.To() {
				grown.AddEdge(e)
			}
		}
	}
	center := centerVertex(n)
	for rim := 0; rim < center; rim++ {
		grown.AddEdge(graph.NewBasicEdge(center, rim, w))
	}
	return grown, nil
}
