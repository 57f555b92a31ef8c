package bottleneck_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/arborfell/oddpath/bottleneck"
	"github.com/arborfell/oddpath/graph"
	"github.com/arborfell/oddpath/verify"
	"github.com/arborfell/oddpath/weight"
)

type BottleneckSuite struct {
	suite.Suite
}

// TestMustCrossTheExpensiveShortcut is scenario S3: a 0-1-2-3-4 chain
// plus a pricey (1,3,100) shortcut; forcing the path through (1,3) costs
// the two chain hops into/out of it plus the shortcut itself.
func (s *BottleneckSuite) TestMustCrossTheExpensiveShortcut() {
	require := require.New(s.T())
	g := graph.New[uint64, graph.BasicEdge[uint64]](5)
	for i := 0; i < 4; i++ {
		g.AddEdge(graph.NewBasicEdge[uint64](i, i+1, 1))
	}
	g.AddEdge(graph.NewBasicEdge[uint64](1, 3, 100))

	r := bottleneck.Solve[uint64](g, 0, 4, 1, 3)
	require.True(r.Found())
	require.True(r.Cost().Equal(weight.Finite(uint64(102))))
	require.NoError(verify.IsPath[uint64](0, 4, r.Cost(), r.Path()))
	require.NoError(verify.TraversesEdge[uint64](r.Path(), 1, 3))
}

// TestNoBottleneckExistsWhenEndpointsAreNotAdjacentToAnyPath covers the
// Impossible branch: removing the only route that could reach t leaves
// nothing for the solver to find.
func (s *BottleneckSuite) TestNoBottleneckExistsWhenEndpointsAreNotAdjacentToAnyPath() {
	require := require.New(s.T())
	g := graph.New[uint64, graph.BasicEdge[uint64]](3)
	g.AddEdge(graph.NewBasicEdge[uint64](0, 1, 1))

	r := bottleneck.Solve[uint64](g, 0, 2, 0, 1)
	require.False(r.Found())
}

func TestBottleneckSuite(t *testing.T) {
	suite.Run(t, new(BottleneckSuite))
}
