package oddpath_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/arborfell/oddpath/builder"
	"github.com/arborfell/oddpath/graph"
	"github.com/arborfell/oddpath/oddpath"
	"github.com/arborfell/oddpath/weight"
)

type OddPathSuite struct {
	suite.Suite
}

// TestShortDetourBeatsTheExpensiveDirectEdge is scenario S1: a direct
// edge (0,3,10) tempts a greedy search, but the three-hop path 0-1-2-3
// is both odd and far cheaper.
func (s *OddPathSuite) TestShortDetourBeatsTheExpensiveDirectEdge() {
	require := require.New(s.T())
	g := graph.New[uint64, graph.BasicEdge[uint64]](4)
	g.AddEdge(graph.NewBasicEdge[uint64](0, 1, 1))
	g.AddEdge(graph.NewBasicEdge[uint64](1, 2, 1))
	g.AddEdge(graph.NewBasicEdge[uint64](2, 3, 1))
	g.AddEdge(graph.NewBasicEdge[uint64](0, 3, 10))

	r := oddpath.Solve[uint64](g, 0, 3)
	require.True(r.Found())
	require.True(r.Cost().Equal(weight.Finite(uint64(3))))
	require.Equal([]int{0, 1, 2, 3}, vertices(r.Path()))
}

// TestSameSourceAndTargetIsImpossible is scenario S2's odd-path half: a
// zero-length path uses an even (zero) number of edges by definition.
func (s *OddPathSuite) TestSameSourceAndTargetIsImpossible() {
	require := require.New(s.T())
	g, err := builder.Cycle[uint64](3, 1)
	require.NoError(err)

	r := oddpath.Solve[uint64](g, 0, 0)
	require.False(r.Found())
}

// TestOddCycleTakesTheLongWayAround is scenario S6: on C5 the only two
// simple 0-2 paths are the 2-edge short way (even, disallowed) and the
// 3-edge long way around. The mirror graph reaches t along the long way
// through vertex events alone; no blossom forms on this input.
func (s *OddPathSuite) TestOddCycleTakesTheLongWayAround() {
	require := require.New(s.T())
	g, err := builder.Cycle[uint64](5, 1)
	require.NoError(err)

	r := oddpath.Solve[uint64](g, 0, 2)
	require.True(r.Found())
	require.True(r.Cost().Equal(weight.Finite(uint64(3))))
	require.Len(r.Path(), 3)
	if diff := cmp.Diff([]int{0, 4, 3, 2}, vertices(r.Path())); diff != "" {
		s.T().Errorf("blossom path vertices mismatch (-want +got):\n%s", diff)
	}
}

// TestNoOddPathExistsOnAnEvenCycle exercises the Impossible branch: on a
// 4-cycle every simple 0-2 path uses exactly 2 edges, so no odd simple
// path exists.
func (s *OddPathSuite) TestNoOddPathExistsOnAnEvenCycle() {
	require := require.New(s.T())
	g, err := builder.Cycle[uint64](4, 1)
	require.NoError(err)

	r := oddpath.Solve[uint64](g, 0, 2)
	require.False(r.Found())
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

func TestOddPathSuite(t *testing.T) {
	suite.Run(t, new(OddPathSuite))
}
