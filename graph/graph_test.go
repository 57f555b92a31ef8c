package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/arborfell/oddpath/graph"
)

type GraphSuite struct {
	suite.Suite
}

func (s *GraphSuite) TestAddEdgeIsSymmetric() {
	require := require.New(s.T())
	g := graph.New[uint64, graph.BasicEdge[uint64]](3)
	g.AddEdge(graph.NewBasicEdge[uint64](0, 1, 5))

	require.True(g.IsAdjacent(0, 1))
	require.True(g.IsAdjacent(1, 0))
	require.Equal(1, g.M())

	back := g.Neighbors(1)
	require.Len(back, 1)
	require.Equal(1, back[0].From())
	require.Equal(0, back[0].To())
	require.Equal(uint64(5), back[0].Weight())
}

func (s *GraphSuite) TestFindEdgesReturnsParallels() {
	require := require.New(s.T())
	g := graph.New[uint64, graph.BasicEdge[uint64]](2)
	g.AddEdge(graph.NewBasicEdge[uint64](0, 1, 1))
	g.AddEdge(graph.NewBasicEdge[uint64](0, 1, 2))

	require.Len(g.FindEdges(0, 1), 2)
	require.Equal(2, g.M())
}

func (s *GraphSuite) TestReverseTwiceIsIdentity() {
	require := require.New(s.T())
	e := graph.NewBasicEdge[uint64](2, 5, 7)
	back := e.Reverse().Reverse()
	require.Equal(e.From(), back.From())
	require.Equal(e.To(), back.To())
	require.Equal(e.Weight(), back.Weight())
}

func (s *GraphSuite) TestSubdivideWeightsSumToOriginal() {
	require := require.New(s.T())
	e := graph.NewBasicEdge[uint64](0, 1, 9)
	first, second := e.Subdivide(42)
	require.Equal(e.Weight(), first.Weight()+second.Weight())
	require.Equal(0, first.From())
	require.Equal(42, first.To())
	require.Equal(42, second.From())
	require.Equal(1, second.To())
}

func (s *GraphSuite) TestShiftByMovesBothEndpoints() {
	require := require.New(s.T())
	e := graph.NewBasicEdge[uint64](1, 2, 3)
	shifted := e.ShiftBy(10)
	require.Equal(11, shifted.From())
	require.Equal(12, shifted.To())
}

func (s *GraphSuite) TestParseDefaultsWeightToOne() {
	require := require.New(s.T())
	r := strings.NewReader("3 2\n0 1\n1 2 5\n")
	g, err := graph.Parse[uint64](r)
	require.NoError(err)
	require.Equal(3, g.N())
	require.Equal(2, g.M())

	edges := g.FindEdges(0, 1)
	require.Len(edges, 1)
	require.Equal(uint64(1), edges[0].Weight())

	edges = g.FindEdges(1, 2)
	require.Len(edges, 1)
	require.Equal(uint64(5), edges[0].Weight())
}

func (s *GraphSuite) TestParseSkipsCommentsAndBlankLines() {
	require := require.New(s.T())
	r := strings.NewReader("% a comment\n2 1\n\n0 1 3\n")
	g, err := graph.Parse[uint64](r)
	require.NoError(err)
	require.Equal(2, g.N())
	require.Equal(1, g.M())
}

func (s *GraphSuite) TestParseRejectsVertexOutOfRange() {
	require := require.New(s.T())
	r := strings.NewReader("2 1\n0 5\n")
	_, err := graph.Parse[uint64](r)
	require.ErrorIs(err, graph.ErrVertexOutOfRange)
}

func (s *GraphSuite) TestParseRejectsMissingHeader() {
	require := require.New(s.T())
	r := strings.NewReader("")
	_, err := graph.Parse[uint64](r)
	require.ErrorIs(err, graph.ErrMissingHeader)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
