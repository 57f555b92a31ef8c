package query

import (
	"fmt"

	"github.com/arborfell/oddpath/weight"
)

// PathResult is the outcome every solver in this module produces: either
// no qualifying walk/path exists, or one does and it cost Cost and
// traversed Path, oldest edge first.
type PathResult[W weight.Numeric, E any] struct {
	found bool
	cost  weight.Cost[W]
	path  []E
}

// Impossible reports that no qualifying walk or path exists.
func Impossible[W weight.Numeric, E any]() PathResult[W, E] {
	return PathResult[W, E]{found: false}
}

// Possible reports a qualifying walk or path of the given cost.
func Possible[W weight.Numeric, E any](cost weight.Cost[W], path []E) PathResult[W, E] {
	return PathResult[W, E]{found: true, cost: cost, path: path}
}

// Found reports whether a qualifying walk or path exists.
func (r PathResult[W, E]) Found() bool { return r.found }

// Cost returns the path's cost. Only meaningful when Found is true.
func (r PathResult[W, E]) Cost() weight.Cost[W] { return r.cost }

// Path returns the edges traversed, oldest first. Only meaningful when
// Found is true.
func (r PathResult[W, E]) Path() []E { return r.path }

func (r PathResult[W, E]) String() string {
	if !r.found {
		return "Impossible"
	}
	return fmt.Sprintf("Possible{cost: %v, path: %v}", r.cost, r.path)
}
