// SPDX-License-Identifier: MIT
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mallnav/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewMixedGraph()
}

func (s *GraphSuite) TestAddVertexIdempotent() {
	require := require.New(s.T())
	require.False(s.g.HasVertex(VertexA))

	require.NoError(s.g.AddVertex(VertexA))
	require.NoError(s.g.AddVertex(VertexA))
	require.True(s.g.HasVertex(VertexA))
	require.Equal(1, s.g.VertexCount())

	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestUndirectedEdgeIsMirrored() {
	require := require.New(s.T())

	_, err := s.g.AddEdge(VertexA, VertexB, 2.5)
	require.NoError(err)
	require.True(s.g.HasEdge(VertexA, VertexB))
	require.True(s.g.HasEdge(VertexB, VertexA))

	ab, err := s.g.EdgeBetween(VertexA, VertexB)
	require.NoError(err)
	ba, err := s.g.EdgeBetween(VertexB, VertexA)
	require.NoError(err)
	require.Equal(ab.Weight, ba.Weight)
	require.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestDirectedEdgeIsOneWay() {
	require := require.New(s.T())

	_, err := s.g.AddEdge(VertexA, VertexB, 5, core.WithEdgeDirected(true))
	require.NoError(err)
	require.True(s.g.HasEdge(VertexA, VertexB))
	require.False(s.g.HasEdge(VertexB, VertexA))

	nbrs, err := s.g.NeighborIDs(VertexB)
	require.NoError(err)
	require.Empty(nbrs)

	// The reverse leg is a separate edge, not a duplicate.
	_, err = s.g.AddEdge(VertexB, VertexA, 5, core.WithEdgeDirected(true))
	require.NoError(err)
	require.True(s.g.HasEdge(VertexB, VertexA))
}

func (s *GraphSuite) TestRejectsDuplicatesAndBadWeights() {
	require := require.New(s.T())

	_, err := s.g.AddEdge(VertexA, VertexB, 1)
	require.NoError(err)
	_, err = s.g.AddEdge(VertexB, VertexA, 1)
	require.ErrorIs(err, core.ErrMultiEdgeNotAllowed)

	_, err = s.g.AddEdge(VertexA, VertexC, -1)
	require.ErrorIs(err, core.ErrBadWeight)
	_, err = s.g.AddEdge(VertexA, VertexC, math.NaN())
	require.ErrorIs(err, core.ErrBadWeight)
	_, err = s.g.AddEdge(VertexA, VertexC, math.Inf(1))
	require.ErrorIs(err, core.ErrBadWeight)

	_, err = s.g.AddEdge(VertexA, VertexA, 0)
	require.ErrorIs(err, core.ErrLoopNotAllowed)
}

func (s *GraphSuite) TestNeighborsDeterministicOrder() {
	require := require.New(s.T())

	for _, to := range []string{"Z", "M", VertexB, VertexC} {
		_, err := s.g.AddEdge(VertexA, to, 1)
		require.NoError(err)
	}

	edges, err := s.g.Neighbors(VertexA)
	require.NoError(err)
	require.Len(edges, 4)
	require.Equal("Z", edges[0].Opposite(VertexA))
	require.Equal(VertexC, edges[3].Opposite(VertexA))

	ids, err := s.g.NeighborIDs(VertexA)
	require.NoError(err)
	require.Equal([]string{VertexB, VertexC, "M", "Z"}, ids)

	_, err = s.g.Neighbors("missing")
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestEdgesCreationOrder() {
	require := require.New(s.T())

	for i := 0; i < 12; i++ {
		_, err := s.g.AddEdge(VertexA, string(rune('a'+i)), float64(i))
		require.NoError(err)
	}
	edges := s.g.Edges()
	require.Len(edges, 12)
	for i, e := range edges {
		require.Equal(float64(i), e.Weight)
	}

	stats := s.g.Stats()
	require.Equal(13, stats.Vertices)
	require.Equal(12, stats.Edges)
	require.Zero(stats.DirectedEdges)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestEdgeOptionsRequireMixedMode(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(VertexA, VertexB, 1, core.WithEdgeDirected(true))
	require.ErrorIs(t, err, core.ErrMixedEdgesNotAllowed)
	require.False(t, g.HasEdge(VertexA, VertexB))
}
