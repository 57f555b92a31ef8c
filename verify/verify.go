package verify

import (
	"errors"
	"fmt"

	"github.com/arborfell/oddpath/graph"
	"github.com/arborfell/oddpath/weight"
)

// Sentinel errors naming the specific invariant a check found broken.
var (
	ErrWrongSource    = errors.New("verify: path does not start at s")
	ErrWrongTarget    = errors.New("verify: path does not end at t")
	ErrBrokenChain    = errors.New("verify: path edges do not chain from-to-to")
	ErrCostMismatch   = errors.New("verify: sum of edge weights does not match reported cost")
	ErrEvenLength     = errors.New("verify: path does not have odd length")
	ErrRepeatedVertex = errors.New("verify: path visits a vertex more than once")
	ErrMissingEdge    = errors.New("verify: path does not traverse the required edge")
	ErrNotDisjoint    = errors.New("verify: paths share a vertex")
)

// IsPath checks property 1: path is a chain of edges from s to t whose
// weights sum to cost.
func IsPath[W weight.Numeric, E graph.Edge[W]](s, t int, cost weight.Cost[W], path []E) error {
	if len(path) == 0 {
		if s == t {
			return nil
		}
		return ErrWrongTarget
	}
	if path[0].From() != s {
		return ErrWrongSource
	}
	if path[len(path)-1].To() != t {
		return ErrWrongTarget
	}

	var zero W
	sum := weight.Finite(zero)
	for i, e := range path {
		if i > 0 && e.From() != path[i-1].To() {
			return fmt.Errorf("%w: at index %d", ErrBrokenChain, i)
		}
		sum = sum.Add(weight.Finite(e.Weight()))
	}
	if !sum.Equal(cost) {
		return fmt.Errorf("%w: got %v, want %v", ErrCostMismatch, sum, cost)
	}
	return nil
}

// IsOddLength checks the parity property shared by Odd-Walk and
// Odd-Path: the path uses an odd number of edges.
func IsOddLength[W weight.Numeric, E graph.Edge[W]](path []E) error {
	if len(path)%2 == 0 {
		return ErrEvenLength
	}
	return nil
}

// IsSimple checks property 2's simplicity half: every vertex appears at
// most once along the path.
func IsSimple[W weight.Numeric, E graph.Edge[W]](path []E) error {
	seen := make(map[int]bool, len(path)+1)
	if len(path) > 0 {
		seen[path[0].From()] = true
	}
	for _, e := range path {
		if seen[e.To()] {
			return fmt.Errorf("%w: %d", ErrRepeatedVertex, e.To())
		}
		seen[e.To()] = true
	}
	return nil
}

// TraversesEdge checks property 4: the path contains an edge between u
// and v, in either direction.
func TraversesEdge[W weight.Numeric, E graph.Edge[W]](path []E, u, v int) error {
	for _, e := range path {
		if (e.From() == u && e.To() == v) || (e.From() == v && e.To() == u) {
			return nil
		}
	}
	return ErrMissingEdge
}

// Disjoint checks property 5's disjointness half: the vertex sets
// touched by path1 and path2 do not intersect.
func Disjoint[W weight.Numeric, E graph.Edge[W]](path1, path2 []E) error {
	seen := make(map[int]bool)
	for _, v := range vertices(path1) {
		seen[v] = true
	}
	for _, v := range vertices(path2) {
		if seen[v] {
			return fmt.Errorf("%w: %d", ErrNotDisjoint, v)
		}
	}
	return nil
}

func vertices[W weight.Numeric, E graph.Edge[W]](path []E) []int {
	if len(path) == 0 {
		return nil
	}
	out := make([]int, 0, len(path)+1)
	out = append(out, path[0].From())
	for _, e := range path {
		out = append(out, e.To())
	}
	return out
}

// DivertsNetwork checks property 6: removing cut from g leaves s and t
// connected (d alone still suffices), but removing cut together with d
// disconnects them (the cut, combined with d, is a genuine separator).
func DivertsNetwork[W weight.Numeric, E graph.Edge[W]](g *graph.UndirectedGraph[W, E], s, t, du, dv int, cut []E) (withD, withoutD bool) {
	excluded := make(map[[2]int]bool, len(cut)+1)
	for _, e := range cut {
		excluded[orderedPair(e.From(), e.To())] = true
	}

	withD = reaches(g, s, t, excluded)

	excluded[orderedPair(du, dv)] = true
	withoutD = !reaches(g, s, t, excluded)

	return withD, withoutD
}

func reaches[W weight.Numeric, E graph.Edge[W]](g *graph.UndirectedGraph[W, E], s, t int, excluded map[[2]int]bool) bool {
	n := g.N()
	seen := make([]bool, n)
	queue := []int{s}
	seen[s] = true
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, e := range g.Neighbors(u) {
			v := e.To()
			if excluded[orderedPair(u, v)] || seen[v] {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}
	return seen[t]
}

func orderedPair(u, v int) [2]int {
	if v < u {
		return [2]int{v, u}
	}
	return [2]int{u, v}
}
