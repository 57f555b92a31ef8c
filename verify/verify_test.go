package verify_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/arborfell/oddpath/graph"
	"github.com/arborfell/oddpath/verify"
	"github.com/arborfell/oddpath/weight"
)

type VerifySuite struct {
	suite.Suite
}

func (s *VerifySuite) chain() []graph.BasicEdge[uint64] {
	return []graph.BasicEdge[uint64]{
		graph.NewBasicEdge[uint64](0, 1, 1),
		graph.NewBasicEdge[uint64](1, 2, 1),
		graph.NewBasicEdge[uint64](2, 3, 1),
	}
}

func (s *VerifySuite) TestIsPathAcceptsAValidChain() {
	require := require.New(s.T())
	require.NoError(verify.IsPath[uint64](0, 3, weight.Finite(uint64(3)), s.chain()))
}

func (s *VerifySuite) TestIsPathRejectsWrongCost() {
	require := require.New(s.T())
	err := verify.IsPath[uint64](0, 3, weight.Finite(uint64(99)), s.chain())
	require.ErrorIs(err, verify.ErrCostMismatch)
}

func (s *VerifySuite) TestIsPathRejectsBrokenChain() {
	require := require.New(s.T())
	broken := []graph.BasicEdge[uint64]{
		graph.NewBasicEdge[uint64](0, 1, 1),
		graph.NewBasicEdge[uint64](2, 3, 1),
	}
	err := verify.IsPath[uint64](0, 3, weight.Finite(uint64(2)), broken)
	require.ErrorIs(err, verify.ErrBrokenChain)
}

func (s *VerifySuite) TestIsOddLength() {
	require := require.New(s.T())
	require.NoError(verify.IsOddLength[uint64](s.chain()))
	require.ErrorIs(verify.IsOddLength[uint64](s.chain()[:2]), verify.ErrEvenLength)
}

func (s *VerifySuite) TestIsSimpleRejectsRepeatedVertex() {
	require := require.New(s.T())
	looped := []graph.BasicEdge[uint64]{
		graph.NewBasicEdge[uint64](0, 1, 1),
		graph.NewBasicEdge[uint64](1, 2, 1),
		graph.NewBasicEdge[uint64](2, 1, 1),
	}
	require.ErrorIs(verify.IsSimple[uint64](looped), verify.ErrRepeatedVertex)
}

func (s *VerifySuite) TestTraversesEdgeAcceptsEitherDirection() {
	require := require.New(s.T())
	require.NoError(verify.TraversesEdge[uint64](s.chain(), 2, 1))
	require.ErrorIs(verify.TraversesEdge[uint64](s.chain(), 5, 6), verify.ErrMissingEdge)
}

func (s *VerifySuite) TestDisjointDetectsSharedVertex() {
	require := require.New(s.T())
	path1 := []graph.BasicEdge[uint64]{graph.NewBasicEdge[uint64](0, 1, 1)}
	path2 := []graph.BasicEdge[uint64]{graph.NewBasicEdge[uint64](1, 2, 1)}
	require.ErrorIs(verify.Disjoint[uint64](path1, path2), verify.ErrNotDisjoint)

	path3 := []graph.BasicEdge[uint64]{graph.NewBasicEdge[uint64](5, 6, 1)}
	require.NoError(verify.Disjoint[uint64](path1, path3))
}

func (s *VerifySuite) TestDivertsNetwork() {
	require := require.New(s.T())
	g := graph.New[uint64, graph.BasicEdge[uint64]](3)
	g.AddEdge(graph.NewBasicEdge[uint64](0, 1, 1))
	g.AddEdge(graph.NewBasicEdge[uint64](1, 2, 1))
	g.AddEdge(graph.NewBasicEdge[uint64](0, 2, 1))

	withD, withoutD := verify.DivertsNetwork[uint64](g, 0, 2, 0, 2, []graph.BasicEdge[uint64]{
		graph.NewBasicEdge[uint64](1, 2, 1),
	})
	require.True(withD)
	require.True(withoutD)
}

func TestVerifySuite(t *testing.T) {
	suite.Run(t, new(VerifySuite))
}
