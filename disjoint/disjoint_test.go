package disjoint_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/arborfell/oddpath/builder"
	"github.com/arborfell/oddpath/disjoint"
	"github.com/arborfell/oddpath/verify"
	"github.com/arborfell/oddpath/weight"
)

type DisjointSuite struct {
	suite.Suite
}

// TestK4DirectEdgesAreCheapestDisjointPair is scenario S4: on K4 with
// uniform weights, the two direct edges (0,2) and (1,3) are both the
// cheapest and only vertex-disjoint choice.
func (s *DisjointSuite) TestK4DirectEdgesAreCheapestDisjointPair() {
	require := require.New(s.T())
	g, err := builder.Complete[uint64](4, 1)
	require.NoError(err)

	r := disjoint.Solve[uint64](g, 0, 2, 1, 3)
	require.True(r.Found())
	require.True(r.Cost().Equal(weight.Finite(uint64(2))))

	require.NoError(verify.Disjoint[uint64](r.Path1(), r.Path2()))
	require.Equal(0, r.Path1()[0].From())
	require.Equal(2, r.Path1()[len(r.Path1())-1].To())
	require.Equal(1, r.Path2()[0].From())
	require.Equal(3, r.Path2()[len(r.Path2())-1].To())
}

func TestDisjointSuite(t *testing.T) {
	suite.Run(t, new(DisjointSuite))
}
