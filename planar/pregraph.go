package planar

import (
	"fmt"

	"github.com/arborfell/oddpath/graph"
	"github.com/arborfell/oddpath/weight"
)

const unset = -1

// preEdge is a half-edge awaiting its left/right face assignment. Every
// call to AddEdge appends two of these back to back (u->v then v->u), so
// index i's partner is always i^1.
type preEdge[W weight.Numeric] struct {
	from, to    int
	weight      W
	left, right int
}

// PreGraph collects vertex placements and edges before planarization. It
// mirrors the teacher's pre-built/finalized split for the ordinary graph
// type (graph.New versus graph.Parse), generalized to the extra
// bookkeeping an embedding needs.
type PreGraph[W weight.Numeric] struct {
	points []Point
	placed []bool
	edges  []preEdge[W]
	adj    [][]int
	index  map[[2]int]int
}

// NewPreGraph allocates an empty pre-graph on n vertices; every vertex
// must receive a point via SetPoint before Planarize.
func NewPreGraph[W weight.Numeric](n int) *PreGraph[W] {
	return &PreGraph[W]{
		points: make([]Point, n),
		placed: make([]bool, n),
		adj:    make([][]int, n),
		index:  make(map[[2]int]int),
	}
}

// SetPoint places vertex id in the plane.
func (p *PreGraph[W]) SetPoint(id int, pt Point) error {
	if id < 0 || id >= len(p.points) {
		return graph.ErrVertexOutOfRange
	}
	if p.placed[id] {
		return ErrDuplicatePoint
	}
	p.points[id] = pt
	p.placed[id] = true
	return nil
}

// AddEdge records an undirected edge between u and v with the given
// weight; faces are assigned later by Planarize. Per the simplification
// pass a planar embedding requires, self-loops are dropped and parallel
// edges are merged by summing their weights into the first occurrence.
func (p *PreGraph[W]) AddEdge(u, v int, w W) {
	if u == v {
		return
	}

	key := orderedPair(u, v)
	if uv, ok := p.index[key]; ok {
		p.edges[uv].weight += w
		p.edges[uv^1].weight += w
		return
	}

	uv := len(p.edges)
	p.edges = append(p.edges, preEdge[W]{from: u, to: v, weight: w, left: unset, right: unset})
	p.adj[u] = append(p.adj[u], uv)

	vu := len(p.edges)
	p.edges = append(p.edges, preEdge[W]{from: v, to: u, weight: w, left: unset, right: unset})
	p.adj[v] = append(p.adj[v], vu)

	p.index[key] = uv
}

// firstCoincidentPair reports the lowest-indexed pair of vertices placed
// at the exact same position, if any. A clockwise polar-angle sort is
// undefined when two points coincide, so this must be rejected before
// sortEdges runs rather than surfacing as a mysterious face-walk error.
func (p *PreGraph[W]) firstCoincidentPair() ([2]int, bool) {
	seen := make(map[Point]int, len(p.points))
	for id, pt := range p.points {
		if other, ok := seen[pt]; ok {
			return [2]int{other, id}, true
		}
		seen[pt] = id
	}
	return [2]int{}, false
}

func orderedPair(u, v int) [2]int {
	if v < u {
		return [2]int{v, u}
	}
	return [2]int{u, v}
}

// Planarize sorts every vertex's incident edges clockwise and walks faces
// to build the real graph and its dual.
func (p *PreGraph[W]) Planarize() (*Graph[W], error) {
	for id, ok := range p.placed {
		if !ok {
			return nil, fmt.Errorf("%w: vertex %d", ErrMissingPoint, id)
		}
	}
	if dup, ok := p.firstCoincidentPair(); ok {
		return nil, fmt.Errorf("%w: vertices %d and %d share a position", ErrCoincidentPoints, dup[0], dup[1])
	}

	p.sortEdges()
	f, err := p.determineFaces()
	if err != nil {
		return nil, err
	}

	n := len(p.points)
	real := graph.New[W, graph.PlanarEdge[W]](n)
	dual := graph.New[W, graph.PlanarEdge[W]](f)
	for i := 0; i < len(p.edges); i += 2 {
		e := p.edges[i]
		pe := graph.NewPlanarEdge(e.from, e.to, e.weight, e.left, e.right)
		real.AddEdge(pe)
		dual.AddEdge(pe.RotateRight())
	}

	return &Graph[W]{points: p.points, real: real, dual: dual}, nil
}

func (p *PreGraph[W]) sortEdges() {
	edgeTo := make([]int, len(p.edges))
	for i, e := range p.edges {
		edgeTo[i] = e.to
	}
	for u := range p.adj {
		sortClockwise(p.points[u], p.points, edgeTo, p.adj[u])
	}
}

// determineFaces walks every vertex's rotation system, assigning each
// half-edge a left and right face id, and returns the discovered face
// count. A half-edge starting an unvisited face walks forward until it
// returns to that same starting half-edge, always turning onto the next edge
// clockwise from the one it arrived on (the standard face-tracing rule
// for a combinatorial embedding given as clockwise rotations).
func (p *PreGraph[W]) determineFaces() (int, error) {
	n := len(p.points)
	currentFace := 0

	for start := 0; start < n; start++ {
		for pos := 0; pos < len(p.adj[start]); pos++ {
			if p.edges[p.adj[start][pos]].left != unset {
				continue
			}
			startEdge := p.adj[start][pos]
			cur := startEdge
			for {
				p.edges[cur].left = currentFace
				to, from := p.edges[cur].to, p.edges[cur].from
				id, err := findReverse(p.adj[to], p.edges, from)
				if err != nil {
					return 0, err
				}
				p.edges[p.adj[to][id]].right = currentFace
				next := (id + 1) % len(p.adj[to])
				cur = p.adj[to][next]
				if cur == startEdge {
					break
				}
			}
			currentFace++
		}
	}

	for _, e := range p.edges {
		if e.left == unset || e.right == unset {
			return 0, ErrIncompleteFaces
		}
	}

	m := len(p.edges) / 2
	if n+currentFace-m != 2 {
		return 0, fmt.Errorf("%w: n=%d m=%d f=%d", ErrEulerFormula, n, m, currentFace)
	}
	return currentFace, nil
}

func findReverse[W weight.Numeric](candidates []int, edges []preEdge[W], from int) (int, error) {
	for pos, idx := range candidates {
		if edges[idx].to == from {
			return pos, nil
		}
	}
	return 0, fmt.Errorf("%w: no reverse edge found", ErrIncompleteFaces)
}
