package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/mallnav/builder"
	"github.com/katalvlaran/mallnav/core"
	"github.com/katalvlaran/mallnav/venue"
)

const (
	bakery  = "Bakery @ Level 0"
	cinema  = "Cinema @ Level 1"
	lift0   = "Connector:E1 @ Level 0"
	lift1   = "Connector:E1 @ Level 1"
	unitFee = 5.0
)

// directVenue is the two-floor venue without corridors: Bakery and E1 on
// floor 0, Cinema and E1 on floor 1, linked by declared connections.
func directVenue(t *testing.T, spec venue.ConnectorSpec) *venue.Venue {
	t.Helper()
	v := venue.New()
	for _, l := range []int{0, 1} {
		_, err := v.AddFloor(l)
		require.NoError(t, err)
	}
	_, err := v.AddConnector(spec)
	require.NoError(t, err)
	require.NoError(t, v.PlaceConnector(spec.Name, 0))
	require.NoError(t, v.PlaceConnector(spec.Name, 1))
	_, err = v.AddShop(0, "Bakery", r2.Vec{})
	require.NoError(t, err)
	_, err = v.AddShop(1, "Cinema", r2.Vec{})
	require.NoError(t, err)
	require.NoError(t, v.Connect(0, "Bakery", spec.Name))
	require.NoError(t, v.Connect(1, spec.Name, "Cinema"))

	return v
}

func elevator() venue.ConnectorSpec {
	return venue.ConnectorSpec{Name: "E1", Kind: venue.Elevator, Accessible: true, Direction: venue.Both, Pos: r2.Vec{X: 10}}
}

// corridorVenue has one floor with a corridor c1(0,5)—c2(10,5)—c3(10,15).
func corridorVenue(t *testing.T) *venue.Venue {
	t.Helper()
	v := venue.New()
	_, err := v.AddFloor(0)
	require.NoError(t, err)
	for _, w := range []struct {
		id   string
		x, y float64
	}{{"c1", 0, 5}, {"c2", 10, 5}, {"c3", 10, 15}} {
		_, err = v.AddWaypoint(0, w.id, r2.Vec{X: w.x, Y: w.y})
		require.NoError(t, err)
	}
	_, err = v.AddSegment(0, "main", []string{"c1", "c2", "c3"})
	require.NoError(t, err)
	_, err = v.AddShop(0, "Bakery", r2.Vec{X: 1, Y: 1})
	require.NoError(t, err)
	_, err = v.AddShop(0, "Florist", r2.Vec{X: 13, Y: 19})
	require.NoError(t, err)

	return v
}

func weight(t *testing.T, g *core.Graph, from, to string) float64 {
	t.Helper()
	e, err := g.EdgeBetween(from, to)
	require.NoError(t, err, "%s -> %s", from, to)

	return e.Weight
}

func TestBuildDirectStrategy(t *testing.T) {
	v := directVenue(t, elevator())
	report, err := builder.Build(v)
	require.NoError(t, err)
	g := report.Graph
	require.Same(t, g, v.Graph())

	assert.Equal(t, builder.StrategyDirect, report.Strategies[0])
	assert.Equal(t, 10.0, weight(t, g, bakery, lift0))
	assert.Equal(t, 10.0, weight(t, g, lift0, bakery))
	assert.Equal(t, unitFee, weight(t, g, lift0, lift1))
	assert.Equal(t, unitFee, weight(t, g, lift1, lift0))
	assert.Equal(t, 10.0, weight(t, g, lift1, cinema))
	assert.Equal(t, 1, report.Components)
	assert.Empty(t, report.Warnings)
}

func TestBuildWaypointStrategy(t *testing.T) {
	v := corridorVenue(t)
	report, err := builder.Build(v)
	require.NoError(t, err)
	g := report.Graph

	assert.Equal(t, builder.StrategyWaypoints, report.Strategies[0])
	assert.Equal(t, 10.0, weight(t, g, "Waypoint:c1 @ Level 0", "Waypoint:c2 @ Level 0"))
	// Bakery (1,1) is nearest to c1 (0,5); Florist (13,19) to c3 (10,15).
	assert.InDelta(t, 4.123105625617661, weight(t, g, bakery, "Waypoint:c1 @ Level 0"), 1e-12)
	assert.Equal(t, 5.0, weight(t, g, "Florist @ Level 0", "Waypoint:c3 @ Level 0"))

	nbrs, err := g.NeighborIDs(bakery)
	require.NoError(t, err)
	assert.Equal(t, []string{"Waypoint:c1 @ Level 0"}, nbrs)
}

func TestBuildCorridorLinksOnlyDeclaredWaypoints(t *testing.T) {
	v := corridorVenue(t)
	// Links to undeclared waypoints never reach the floor.
	require.ErrorIs(t, v.LinkWaypoints(0, "c3", "ghost"), venue.ErrUnknownWaypoint)
	_, err := v.AddSegment(0, "spur", []string{"c2", "ghost"})
	require.ErrorIs(t, err, venue.ErrUnknownWaypoint)

	report, err := builder.Build(v)
	require.NoError(t, err)
	assert.Empty(t, report.Warnings)

	g := report.Graph
	assert.Equal(t, 10.0, weight(t, g, "Waypoint:c1 @ Level 0", "Waypoint:c2 @ Level 0"))
	assert.Equal(t, 10.0, weight(t, g, "Waypoint:c2 @ Level 0", "Waypoint:c3 @ Level 0"))
	assert.False(t, g.HasEdge("Waypoint:c1 @ Level 0", "Waypoint:c3 @ Level 0"))
	assert.False(t, g.HasVertex("Waypoint:ghost @ Level 0"))
}

func TestBuildEdgeSymmetry(t *testing.T) {
	v := directVenue(t, elevator())
	report, err := builder.Build(v)
	require.NoError(t, err)
	g := report.Graph

	for _, e := range g.Edges() {
		rev, err := g.EdgeBetween(e.To, e.From)
		if e.Directed {
			// Vertical legs: both directions exist for an elevator, with equal weight.
			require.NoError(t, err)
			assert.Equal(t, e.Weight, rev.Weight)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, e.Weight, rev.Weight)
	}
}

func TestBuildEscalatorDirection(t *testing.T) {
	v := directVenue(t, venue.ConnectorSpec{Name: "S1", Kind: venue.Escalator, Direction: venue.Up, Pos: r2.Vec{X: 10}})
	report, err := builder.Build(v)
	require.NoError(t, err)
	g := report.Graph

	assert.True(t, g.HasEdge("Connector:S1 @ Level 0", "Connector:S1 @ Level 1"))
	assert.False(t, g.HasEdge("Connector:S1 @ Level 1", "Connector:S1 @ Level 0"))
}

func TestBuildVerticalWeightScalesWithLevels(t *testing.T) {
	v := venue.New()
	for _, l := range []int{0, 1, 3} {
		_, err := v.AddFloor(l)
		require.NoError(t, err)
	}
	_, err := v.AddConnector(venue.ConnectorSpec{Name: "E", Kind: venue.Stairs})
	require.NoError(t, err)
	for _, l := range []int{0, 1, 3} {
		require.NoError(t, v.PlaceConnector("E", l))
	}

	report, err := builder.Build(v, builder.WithVerticalUnitCost(2))
	require.NoError(t, err)
	assert.Equal(t, 6.0, weight(t, report.Graph, "Connector:E @ Level 0", "Connector:E @ Level 3"))
	assert.Equal(t, 4.0, weight(t, report.Graph, "Connector:E @ Level 3", "Connector:E @ Level 1"))
}

func TestBuildIsIdempotent(t *testing.T) {
	v := corridorVenue(t)
	_, err := v.AddConnector(elevator())
	require.NoError(t, err)
	require.NoError(t, v.PlaceConnector("E1", 0))

	first, err := builder.Build(v)
	require.NoError(t, err)
	second, err := builder.Build(v)
	require.NoError(t, err)

	require.Equal(t, first.Graph.Vertices(), second.Graph.Vertices())
	a, b := first.Graph.Edges(), second.Graph.Edges()
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, *a[i], *b[i])
	}
	assert.Same(t, second.Graph, v.Graph())
}

func TestBuildWarnings(t *testing.T) {
	v := venue.New()
	_, err := v.AddFloor(0)
	require.NoError(t, err)
	_, err = v.AddShop(0, "Kiosk", r2.Vec{})
	require.NoError(t, err)
	_, err = v.AddConnector(elevator())
	require.NoError(t, err)
	require.NoError(t, v.PlaceConnector("E1", 0))

	report, err := builder.Build(v)
	require.NoError(t, err)

	var reasons []string
	for _, w := range report.Warnings {
		reasons = append(reasons, w.Reason)
	}
	assert.Contains(t, reasons, "serves fewer than two floors")
	assert.Contains(t, reasons, "connector is not linked to the floor")
	assert.Contains(t, reasons, "shop is isolated")
	assert.Equal(t, 2, report.Components)
}

func TestBuildRejectsNilVenue(t *testing.T) {
	_, err := builder.Build(nil)
	assert.ErrorIs(t, err, builder.ErrNilVenue)
}

func TestOptionValidation(t *testing.T) {
	assert.Panics(t, func() { builder.WithVerticalUnitCost(0) })
	assert.Panics(t, func() { builder.WithVerticalUnitCost(-1) })
	assert.Panics(t, func() { builder.WithLogger(nil) })
}
