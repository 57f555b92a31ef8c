package planar_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/arborfell/oddpath/planar"
)

type PlanarSuite struct {
	suite.Suite
}

func (s *PlanarSuite) triangle() *planar.PreGraph[uint64] {
	pre := planar.NewPreGraph[uint64](3)
	s.Require().NoError(pre.SetPoint(0, planar.Point{X: 0, Y: 0}))
	s.Require().NoError(pre.SetPoint(1, planar.Point{X: 1, Y: 0}))
	s.Require().NoError(pre.SetPoint(2, planar.Point{X: 0.5, Y: 1}))
	pre.AddEdge(0, 1, 1)
	pre.AddEdge(1, 2, 1)
	pre.AddEdge(2, 0, 1)
	return pre
}

func (s *PlanarSuite) TestTriangleSatisfiesEuler() {
	require := require.New(s.T())
	pg, err := s.triangle().Planarize()
	require.NoError(err)
	require.Equal(3, pg.N())
	require.Equal(3, pg.M())
	require.Equal(2, pg.F())
	require.Equal(2, pg.N()-pg.M()+pg.F())
}

func (s *PlanarSuite) TestDualHasOneVertexPerFace() {
	require := require.New(s.T())
	pg, err := s.triangle().Planarize()
	require.NoError(err)
	require.Equal(pg.F(), pg.Dual().N())
	require.Equal(pg.M(), pg.Dual().M())
}

func (s *PlanarSuite) TestRotateRightFourTimesIsIdentity() {
	require := require.New(s.T())
	pg, err := s.triangle().Planarize()
	require.NoError(err)

	e := pg.Real().Neighbors(0)[0]
	r := e.RotateRight().RotateRight().RotateRight().RotateRight()
	require.Equal(e.From(), r.From())
	require.Equal(e.To(), r.To())
	require.Equal(e.Left(), r.Left())
	require.Equal(e.Right(), r.Right())
}

func (s *PlanarSuite) TestSelfLoopIsDropped() {
	require := require.New(s.T())
	pre := s.triangle()
	pre.AddEdge(1, 1, 5)
	pg, err := pre.Planarize()
	require.NoError(err)
	require.Equal(3, pg.M())
}

func (s *PlanarSuite) TestParallelEdgesAreMerged() {
	require := require.New(s.T())
	pre := s.triangle()
	pre.AddEdge(0, 1, 4)
	pg, err := pre.Planarize()
	require.NoError(err)
	require.Equal(3, pg.M())

	e := pg.Real().Neighbors(0)[0]
	require.Equal(uint64(5), e.Weight())
}

// TestBowtieSharedVertexFaceWalkTerminatesCorrectly exercises a face walk
// that passes through its own starting vertex a second time before
// closing: vertex 0 is the cut vertex of two triangles on opposite sides
// of it, so the outer face's walk visits vertex 0 twice. The walk must
// close on returning to its starting half-edge, not merely on reaching
// any half-edge that happens to start at vertex 0.
func (s *PlanarSuite) TestBowtieSharedVertexFaceWalkTerminatesCorrectly() {
	require := require.New(s.T())
	pre := planar.NewPreGraph[uint64](5)
	require.NoError(pre.SetPoint(0, planar.Point{X: 0, Y: 0}))
	require.NoError(pre.SetPoint(1, planar.Point{X: 1, Y: 1}))
	require.NoError(pre.SetPoint(2, planar.Point{X: -1, Y: 1}))
	require.NoError(pre.SetPoint(3, planar.Point{X: -1, Y: -1}))
	require.NoError(pre.SetPoint(4, planar.Point{X: 1, Y: -1}))
	pre.AddEdge(0, 1, 1)
	pre.AddEdge(1, 2, 1)
	pre.AddEdge(2, 0, 1)
	pre.AddEdge(0, 3, 1)
	pre.AddEdge(3, 4, 1)
	pre.AddEdge(4, 0, 1)

	pg, err := pre.Planarize()
	require.NoError(err)
	require.Equal(5, pg.N())
	require.Equal(6, pg.M())
	require.Equal(2, pg.N()-pg.M()+pg.F())
	require.Equal(3, pg.F())
}

func (s *PlanarSuite) TestCoincidentPointsAreRejected() {
	require := require.New(s.T())
	pre := planar.NewPreGraph[uint64](3)
	require.NoError(pre.SetPoint(0, planar.Point{X: 0, Y: 0}))
	require.NoError(pre.SetPoint(1, planar.Point{X: 1, Y: 0}))
	require.NoError(pre.SetPoint(2, planar.Point{X: 0, Y: 0}))
	pre.AddEdge(0, 1, 1)
	pre.AddEdge(1, 2, 1)

	_, err := pre.Planarize()
	require.ErrorIs(err, planar.ErrCoincidentPoints)
}

func (s *PlanarSuite) TestParseRoundTrips() {
	require := require.New(s.T())
	r := strings.NewReader("3 3\n0 0 0\n1 1 0\n2 0.5 1\n0 1 2\n1 2 2\n2 0 2\n")
	pg, err := planar.Parse[uint64](r)
	require.NoError(err)
	require.Equal(3, pg.N())
	require.Equal(3, pg.M())
	require.Equal(2, pg.F())
}

func TestPlanarSuite(t *testing.T) {
	suite.Run(t, new(PlanarSuite))
}
