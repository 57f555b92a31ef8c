package query_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/arborfell/oddpath/query"
	"github.com/arborfell/oddpath/weight"
)

type QuerySuite struct {
	suite.Suite
}

func (s *QuerySuite) TestParseWalkQueries() {
	require := require.New(s.T())
	r := strings.NewReader("% comment\n0 3 3\n\n1 1 ∞\n")
	qs, err := query.ParseWalkQueries[uint64](r)
	require.NoError(err)
	require.Len(qs, 2)
	require.Equal(query.WalkQuery[uint64]{S: 0, T: 3, Cost: weight.Finite(uint64(3))}, qs[0])
	require.True(qs[1].Cost.IsInfinite())
}

func (s *QuerySuite) TestParseBottleneckQueries() {
	require := require.New(s.T())
	r := strings.NewReader("0 4 1 3 102\n")
	qs, err := query.ParseBottleneckQueries[uint64](r)
	require.NoError(err)
	require.Equal([]query.BottleneckQuery[uint64]{
		{S: 0, T: 4, U: 1, V: 3, Cost: weight.Finite(uint64(102))},
	}, qs)
}

func (s *QuerySuite) TestParseDisjointQueries() {
	require := require.New(s.T())
	r := strings.NewReader("0 2 1 3 2\n")
	qs, err := query.ParseDisjointQueries[uint64](r)
	require.NoError(err)
	require.Equal([]query.DisjointQuery[uint64]{
		{S1: 0, T1: 2, S2: 1, T2: 3, Cost: weight.Finite(uint64(2))},
	}, qs)
}

func (s *QuerySuite) TestParseDiversionQueriesWithOptionalCost() {
	require := require.New(s.T())
	r := strings.NewReader("0 1 0 1 1\n0 2 0 1\n")
	qs, err := query.ParseDiversionQueries[uint64](r)
	require.NoError(err)
	require.Len(qs, 2)
	require.True(qs[0].HasCost)
	require.True(qs[0].Cost.Equal(weight.Finite(uint64(1))))
	require.False(qs[1].HasCost)
}

func (s *QuerySuite) TestMalformedRowIsRejected() {
	require := require.New(s.T())
	_, err := query.ParseWalkQueries[uint64](strings.NewReader("0 1\n"))
	require.ErrorIs(err, query.ErrMalformedQuery)
}

func TestQuerySuite(t *testing.T) {
	suite.Run(t, new(QuerySuite))
}
