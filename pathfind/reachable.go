// SPDX-License-Identifier: MIT

package pathfind

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mallnav/reach"
	"github.com/katalvlaran/mallnav/venue"
)

// Destination is a shop reachable from the start of a Reachable query.
type Destination struct {
	Name string
	// Hops is the fewest edges from any start shop to any shop with this name.
	Hops int
	// Path is the vertex sequence of that fewest-hop walk. It is not
	// necessarily the cheapest route; use FindPath for that.
	Path []string
}

// Reachable lists the shops a traveller can reach from any shop named
// start, sorted by name. The start shops themselves are not listed unless a
// same-named shop on another floor is reachable. WithAccessible and
// WithMaxHops apply; FloorWeight is ignored.
//
// Errors: ErrNilVenue, ErrGraphNotBuilt, *ShopNotFoundError.
func Reachable(v *venue.Venue, start string, opts ...Option) ([]Destination, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if v == nil {
		return nil, ErrNilVenue
	}
	g := v.Graph()
	if g == nil {
		return nil, ErrGraphNotBuilt
	}
	sources, err := resolve(v, start, cfg)
	if err != nil {
		return nil, err
	}

	blocked := map[string]bool{}
	if cfg.RequireAccessible {
		blocked = inaccessibleVertices(v)
	}
	walkOpts := []reach.Option{
		reach.WithFilterNeighbor(func(_, next string) bool { return !blocked[next] }),
		reach.WithMaxDepth(cfg.MaxHops),
	}

	isSource := make(map[string]bool, len(sources))
	ids := make([]string, 0, len(sources))
	for _, s := range sources {
		id := venue.ShopNodeID(s)
		isSource[id] = true
		ids = append(ids, id)
	}

	best := make(map[string]Destination)
	for _, id := range ids {
		if !g.HasVertex(id) {
			continue
		}
		res, err := reach.From(g, id, walkOpts...)
		if err != nil {
			return nil, fmt.Errorf("pathfind: reachability from %q: %w", id, err)
		}
		for _, got := range res.Order {
			if isSource[got] {
				continue
			}
			e, ok := v.Resolve(got)
			if !ok || e.Kind != venue.KindShop {
				continue
			}
			hops := res.Depth[got]
			if prev, seen := best[e.Shop.Name]; seen && prev.Hops <= hops {
				continue
			}
			path, err := res.PathTo(got)
			if err != nil {
				return nil, fmt.Errorf("pathfind: reachability from %q: %w", id, err)
			}
			best[e.Shop.Name] = Destination{Name: e.Shop.Name, Hops: hops, Path: path}
		}
	}

	out := make([]Destination, 0, len(best))
	for _, d := range best {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}
