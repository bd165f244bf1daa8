package venue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/mallnav/venue"
)

func twoFloorVenue(t *testing.T) *venue.Venue {
	t.Helper()
	v := venue.New()
	_, err := v.AddFloor(1)
	require.NoError(t, err)
	_, err = v.AddFloor(0)
	require.NoError(t, err)

	_, err = v.AddConnector(venue.ConnectorSpec{Name: "E1", Kind: venue.Elevator, Accessible: true, Pos: r2.Vec{X: 10}})
	require.NoError(t, err)
	require.NoError(t, v.PlaceConnector("E1", 0))
	require.NoError(t, v.PlaceConnector("E1", 1))

	_, err = v.AddShop(0, "Bakery", r2.Vec{})
	require.NoError(t, err)
	_, err = v.AddShop(1, "Cinema", r2.Vec{})
	require.NoError(t, err)
	_, err = v.AddWaypoint(0, "c1", r2.Vec{X: 5})
	require.NoError(t, err)

	return v
}

func TestFloorsSortedByLevel(t *testing.T) {
	v := twoFloorVenue(t)
	floors := v.Floors()
	require.Len(t, floors, 2)
	assert.Equal(t, 0, floors[0].Level)
	assert.Equal(t, 1, floors[1].Level)

	_, err := v.AddFloor(0)
	assert.ErrorIs(t, err, venue.ErrDuplicateFloor)
}

func TestShopsNamedIsCaseInsensitive(t *testing.T) {
	v := twoFloorVenue(t)
	_, err := v.AddShop(1, "bakery", r2.Vec{X: 3})
	require.NoError(t, err)

	got := v.ShopsNamed("BAKERY")
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Level)
	assert.Equal(t, 1, got[1].Level)

	_, err = v.AddShop(0, "Bakery", r2.Vec{})
	assert.ErrorIs(t, err, venue.ErrDuplicateShop)
	_, err = v.AddShop(0, "Connector:Fake", r2.Vec{})
	assert.ErrorIs(t, err, venue.ErrReservedName)
}

func TestConnectorPlacement(t *testing.T) {
	v := twoFloorVenue(t)
	c, ok := v.Connector("E1")
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, c.Levels())
	assert.True(t, c.Serves(1))
	assert.False(t, c.Serves(2))

	require.NoError(t, v.PlaceConnector("E1", 0))
	assert.Equal(t, []int{0, 1}, c.Levels())

	assert.ErrorIs(t, v.PlaceConnector("E9", 0), venue.ErrUnknownConnector)
	assert.ErrorIs(t, v.PlaceConnector("E1", 7), venue.ErrUnknownFloor)
}

func TestTraversable(t *testing.T) {
	tests := []struct {
		name      string
		kind      venue.ConnectorKind
		direction venue.Direction
		from, to  int
		want      bool
	}{
		{"escalator up going up", venue.Escalator, venue.Up, 0, 1, true},
		{"escalator up going down", venue.Escalator, venue.Up, 1, 0, false},
		{"escalator down going down", venue.Escalator, venue.Down, 2, 0, true},
		{"escalator down going up", venue.Escalator, venue.Down, 0, 2, false},
		{"escalator both", venue.Escalator, venue.Both, 1, 0, true},
		{"elevator ignores direction", venue.Elevator, venue.Up, 1, 0, true},
		{"stairs ignore direction", venue.Stairs, venue.Down, 0, 1, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := &venue.Connector{Name: "X", Kind: tc.kind, Direction: tc.direction}
			assert.Equal(t, tc.want, c.Traversable(tc.from, tc.to))
		})
	}
}

func TestSegmentsLinkConsecutiveWaypoints(t *testing.T) {
	v := twoFloorVenue(t)
	_, err := v.AddWaypoint(0, "c2", r2.Vec{X: 5, Y: 5})
	require.NoError(t, err)
	_, err = v.AddWaypoint(0, "c3", r2.Vec{X: 5, Y: 10})
	require.NoError(t, err)

	_, err = v.AddSegment(0, "main", []string{"c1", "c2", "c3"})
	require.NoError(t, err)
	require.NoError(t, v.LinkWaypoints(0, "c2", "c1"))

	f, _ := v.Floor(0)
	c2, _ := f.Waypoint("c2")
	assert.Equal(t, []string{"c1", "c3"}, c2.Links())
	assert.True(t, f.HasCorridorLayer())

	_, err = v.AddSegment(0, "bad", []string{"c1", "nope"})
	assert.ErrorIs(t, err, venue.ErrUnknownWaypoint)
	assert.ErrorIs(t, v.LinkWaypoints(0, "c1", "nope"), venue.ErrUnknownWaypoint)
}

func TestConnectResolvesShopsThenConnectors(t *testing.T) {
	v := twoFloorVenue(t)
	require.NoError(t, v.Connect(0, "Bakery", "E1"))

	f, _ := v.Floor(0)
	links := f.Links()
	require.Len(t, links, 1)
	assert.Equal(t, venue.KindShop, links[0].From.Kind)
	assert.Equal(t, venue.KindConnector, links[0].To.Kind)
	assert.Equal(t, 0, links[0].To.Level)

	s, _ := f.Shop("Bakery")
	require.Len(t, s.Links(), 1)
	c, _ := v.Connector("E1")
	require.Len(t, c.Links(0), 1)
	assert.Empty(t, c.Links(1))

	assert.ErrorIs(t, v.Connect(0, "Bakery", "Ghost"), venue.ErrUnknownEntity)
}

func TestLocate(t *testing.T) {
	v := twoFloorVenue(t)
	loc, ok := v.Locate("Connector:E1 @ Level 1")
	require.True(t, ok)
	assert.Equal(t, 10.0, loc.X)
	assert.Equal(t, 1, loc.Level)
	assert.Equal(t, "E1 (elevator)", loc.Entity.Describe())

	_, ok = v.Locate("Connector:E1 @ Level 4")
	assert.False(t, ok)
}

func TestParseKinds(t *testing.T) {
	k, err := venue.ParseConnectorKind("Escalator")
	require.NoError(t, err)
	assert.Equal(t, venue.Escalator, k)
	k, err = venue.ParseConnectorKind("")
	require.NoError(t, err)
	assert.Equal(t, venue.Elevator, k)
	_, err = venue.ParseConnectorKind("ramp")
	assert.ErrorIs(t, err, venue.ErrBadConnectorKind)

	d, err := venue.ParseDirection("")
	require.NoError(t, err)
	assert.Equal(t, venue.Both, d)
	_, err = venue.ParseDirection("sideways")
	assert.ErrorIs(t, err, venue.ErrBadDirection)
}
