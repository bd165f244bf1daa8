// SPDX-License-Identifier: MIT

package venue

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/mallnav/core"
)

// Venue is the aggregate root: floors keyed by level, connectors keyed by
// name, and the routing graph derived from them.
//
// The spatial model is populated once (single goroutine) and then treated as
// read-only. The graph is attached by the builder; readers may run path
// queries concurrently as long as no rebuild is in progress.
type Venue struct {
	floors     map[int]*Floor
	levels     []int
	connectors map[string]*Connector
	connOrder  []string

	mu    sync.RWMutex
	graph *core.Graph
}

// New returns an empty Venue.
func New() *Venue {
	return &Venue{
		floors:     make(map[int]*Floor),
		connectors: make(map[string]*Connector),
	}
}

// AddFloor declares a floor level.
func (v *Venue) AddFloor(level int) (*Floor, error) {
	if _, ok := v.floors[level]; ok {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateFloor, level)
	}
	f := newFloor(level)
	v.floors[level] = f
	i := sort.SearchInts(v.levels, level)
	v.levels = append(v.levels, 0)
	copy(v.levels[i+1:], v.levels[i:])
	v.levels[i] = level

	return f, nil
}

// Floor returns the floor at level.
func (v *Venue) Floor(level int) (*Floor, bool) {
	f, ok := v.floors[level]
	return f, ok
}

// Floors returns all floors ordered by level.
func (v *Venue) Floors() []*Floor {
	out := make([]*Floor, 0, len(v.levels))
	for _, l := range v.levels {
		out = append(out, v.floors[l])
	}

	return out
}

// AddConnector registers a connector. It serves no floor until placed with PlaceConnector.
func (v *Venue) AddConnector(spec ConnectorSpec) (*Connector, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("%w: connector", ErrEmptyName)
	}
	if _, ok := v.connectors[spec.Name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateConnector, spec.Name)
	}
	if spec.Kind == "" {
		spec.Kind = Elevator
	}
	if spec.Direction == "" {
		spec.Direction = Both
	}
	c := &Connector{
		Name:       spec.Name,
		Kind:       spec.Kind,
		Accessible: spec.Accessible,
		Direction:  spec.Direction,
		Pos:        spec.Pos,
		links:      make(map[int][]Entity),
	}
	v.connectors[c.Name] = c
	v.connOrder = append(v.connOrder, c.Name)

	return c, nil
}

// Connector returns the connector with the given name.
func (v *Venue) Connector(name string) (*Connector, bool) {
	c, ok := v.connectors[name]
	return c, ok
}

// Connectors returns all connectors in registration order.
func (v *Venue) Connectors() []*Connector {
	out := make([]*Connector, 0, len(v.connOrder))
	for _, n := range v.connOrder {
		out = append(out, v.connectors[n])
	}

	return out
}

// PlaceConnector marks the named connector as present on level.
// Placing it twice on the same floor is a no-op.
func (v *Venue) PlaceConnector(name string, level int) error {
	f, ok := v.floors[level]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownFloor, level)
	}
	c, ok := v.connectors[name]
	if !ok {
		return fmt.Errorf("%w: %s on level %d", ErrUnknownConnector, name, level)
	}
	if c.Serves(level) {
		return nil
	}
	i := sort.SearchInts(c.levels, level)
	c.levels = append(c.levels, 0)
	copy(c.levels[i+1:], c.levels[i:])
	c.levels[i] = level
	f.connectors = append(f.connectors, c)

	return nil
}

// AddShop declares a shop on level. Names are unique per floor and may repeat
// across floors.
func (v *Venue) AddShop(level int, name string, pos r2.Vec) (*Shop, error) {
	f, ok := v.floors[level]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFloor, level)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: shop on level %d", ErrEmptyName, level)
	}
	if reservedName(name) {
		return nil, fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	if _, dup := f.shopIndex[name]; dup {
		return nil, fmt.Errorf("%w: %s on level %d", ErrDuplicateShop, name, level)
	}
	s := &Shop{Name: name, Pos: pos, Level: level}
	f.shops = append(f.shops, s)
	f.shopIndex[name] = s

	return s, nil
}

// Shops returns every shop, ordered by floor level then declaration order.
func (v *Venue) Shops() []*Shop {
	var out []*Shop
	for _, f := range v.Floors() {
		out = append(out, f.shops...)
	}

	return out
}

// ShopsNamed returns every shop whose name matches name case-insensitively,
// ordered by floor level.
func (v *Venue) ShopsNamed(name string) []*Shop {
	var out []*Shop
	for _, s := range v.Shops() {
		if strings.EqualFold(s.Name, name) {
			out = append(out, s)
		}
	}

	return out
}

// ShopNames returns the distinct shop names in the venue, sorted.
func (v *Venue) ShopNames() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range v.Shops() {
		if _, ok := seen[s.Name]; ok {
			continue
		}
		seen[s.Name] = struct{}{}
		out = append(out, s.Name)
	}
	sort.Strings(out)

	return out
}

// AddWaypoint declares a corridor waypoint on level.
func (v *Venue) AddWaypoint(level int, id string, pos r2.Vec) (*Waypoint, error) {
	f, ok := v.floors[level]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFloor, level)
	}
	if id == "" {
		return nil, fmt.Errorf("%w: waypoint on level %d", ErrEmptyName, level)
	}
	if _, dup := f.wpIndex[id]; dup {
		return nil, fmt.Errorf("%w: waypoint %s on level %d", ErrDuplicateWaypoint, id, level)
	}
	w := &Waypoint{ID: id, Pos: pos, Level: level}
	f.waypoints = append(f.waypoints, w)
	f.wpIndex[id] = w

	return w, nil
}

// LinkWaypoints declares a walkable connection between two waypoints on level.
// Repeated declarations of the same pair are ignored.
func (v *Venue) LinkWaypoints(level int, a, b string) error {
	f, ok := v.floors[level]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownFloor, level)
	}
	wa, ok := f.wpIndex[a]
	if !ok {
		return fmt.Errorf("%w: %s on level %d", ErrUnknownWaypoint, a, level)
	}
	wb, ok := f.wpIndex[b]
	if !ok {
		return fmt.Errorf("%w: %s on level %d", ErrUnknownWaypoint, b, level)
	}
	if a == b {
		return nil
	}
	addUnique(&wa.links, b)
	addUnique(&wb.links, a)

	return nil
}

// AddSegment groups waypoints into a named corridor and links consecutive
// waypoints of the run.
func (v *Venue) AddSegment(level int, id string, waypointIDs []string) (*Segment, error) {
	f, ok := v.floors[level]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFloor, level)
	}
	if id == "" {
		return nil, fmt.Errorf("%w: segment on level %d", ErrEmptyName, level)
	}
	for _, s := range f.segments {
		if s.ID == id {
			return nil, fmt.Errorf("%w: segment %s on level %d", ErrDuplicateWaypoint, id, level)
		}
	}
	for _, wid := range waypointIDs {
		if _, ok := f.wpIndex[wid]; !ok {
			return nil, fmt.Errorf("%w: %s in segment %s on level %d", ErrUnknownWaypoint, wid, id, level)
		}
	}
	for i := 1; i < len(waypointIDs); i++ {
		if err := v.LinkWaypoints(level, waypointIDs[i-1], waypointIDs[i]); err != nil {
			return nil, err
		}
	}
	s := &Segment{ID: id, Level: level, Waypoints: append([]string(nil), waypointIDs...)}
	f.segments = append(f.segments, s)

	return s, nil
}

// Connect declares a direct connection between two entities on level. Each
// name is looked up as a shop first, then as a connector present on the floor.
func (v *Venue) Connect(level int, from, to string) error {
	f, ok := v.floors[level]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownFloor, level)
	}
	a, err := f.lookup(from)
	if err != nil {
		return err
	}
	b, err := f.lookup(to)
	if err != nil {
		return err
	}
	f.links = append(f.links, Link{From: a, To: b})
	a.attach(b)
	b.attach(a)

	return nil
}

func (f *Floor) lookup(name string) (Entity, error) {
	if s, ok := f.shopIndex[name]; ok {
		return ShopEntity(s), nil
	}
	if c, ok := f.Connector(name); ok {
		return ConnectorEntity(c, f.Level), nil
	}

	return Entity{}, fmt.Errorf("%w: %s on level %d", ErrUnknownEntity, name, f.Level)
}

func (e Entity) attach(other Entity) {
	switch e.Kind {
	case KindShop:
		e.Shop.links = append(e.Shop.links, other)
	case KindConnector:
		e.Connector.links[e.Level] = append(e.Connector.links[e.Level], other)
	}
}

// Graph returns the routing graph attached by the builder, or nil before the first build.
func (v *Venue) Graph() *core.Graph {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.graph
}

// SetGraph replaces the routing graph. Only the builder should call it.
func (v *Venue) SetGraph(g *core.Graph) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.graph = g
}

// Resolve maps a vertex key back to its entity in floor context.
func (v *Venue) Resolve(id string) (Entity, bool) {
	ref, err := ParseNodeID(id)
	if err != nil {
		return Entity{}, false
	}
	f, ok := v.floors[ref.Level]
	if !ok {
		return Entity{}, false
	}
	switch ref.Kind {
	case KindShop:
		if s, ok := f.shopIndex[ref.Key]; ok {
			return ShopEntity(s), true
		}
	case KindConnector:
		if c, ok := v.connectors[ref.Key]; ok && c.Serves(ref.Level) {
			return ConnectorEntity(c, ref.Level), true
		}
	case KindWaypoint:
		if w, ok := f.wpIndex[ref.Key]; ok {
			return WaypointEntity(w), true
		}
	}

	return Entity{}, false
}

// Location is the placement of a vertex, as handed to renderers.
type Location struct {
	ID     string
	Entity Entity
	X, Y   float64
	Level  int
}

// Locate resolves a vertex key to its position and floor.
func (v *Venue) Locate(id string) (Location, bool) {
	e, ok := v.Resolve(id)
	if !ok {
		return Location{}, false
	}
	p := e.Position()

	return Location{ID: id, Entity: e, X: p.X, Y: p.Y, Level: e.Level}, true
}

func addUnique(list *[]string, id string) {
	for _, x := range *list {
		if x == id {
			return
		}
	}
	*list = append(*list, id)
}
