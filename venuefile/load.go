// SPDX-License-Identifier: MIT

package venuefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mallnav/venue"
)

// Sentinel errors.
var (
	// ErrRead wraps failures reading the description file.
	ErrRead = errors.New("venuefile: read failed")
	// ErrDecode wraps malformed YAML or JSON.
	ErrDecode = errors.New("venuefile: decode failed")
	// ErrInvalid reports a value the model cannot represent, such as an unknown connector type.
	ErrInvalid = errors.New("venuefile: invalid document")
)

// Warning is a reference the loader skipped.
type Warning struct {
	Floor   int
	Subject string
	Reason  string
}

// String renders the warning.
func (w Warning) String() string {
	return fmt.Sprintf("level %d: %s: %s", w.Floor, w.Subject, w.Reason)
}

// Option configures a load.
type Option func(*loader)

// WithLogger routes skipped-reference warnings to logger. Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("venuefile: WithLogger(nil)")
	}
	return func(l *loader) {
		l.log = logger.With("component", "venuefile")
	}
}

type loader struct {
	log      *slog.Logger
	v        *venue.Venue
	warnings []Warning
}

// Load reads and decodes the description at path. It does not build the graph.
func Load(path string, opts ...Option) (*venue.Venue, []Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	return Decode(bytes.NewReader(data), opts...)
}

// Decode reads a description from r and populates a new venue. Dangling
// references are skipped and reported as warnings.
func Decode(r io.Reader, opts ...Option) (*venue.Venue, []Warning, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return Populate(doc, opts...)
}

// Populate turns a decoded document into a venue.
//
// Order: floors, connectors, connector placement, shops, corridor layer,
// direct connections.
func Populate(doc Document, opts ...Option) (*venue.Venue, []Warning, error) {
	l := &loader{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		v:   venue.New(),
	}
	for _, opt := range opts {
		opt(l)
	}

	floors := make([]FloorDoc, 0, len(doc.Floors))
	for _, f := range doc.Floors {
		if _, err := l.v.AddFloor(f.Level); err != nil {
			l.warn(f.Level, fmt.Sprintf("floor %d", f.Level), err)
			continue
		}
		floors = append(floors, f)
	}

	for _, c := range doc.Connectors {
		spec, err := connectorSpec(c)
		if err != nil {
			return nil, nil, err
		}
		if _, err = l.v.AddConnector(spec); err != nil {
			l.warn(0, "connector "+c.Name, err)
		}
	}

	for _, f := range floors {
		for _, name := range f.Connectors {
			if err := l.v.PlaceConnector(name, f.Level); err != nil {
				l.warn(f.Level, "connector "+name, err)
			}
		}
	}

	for _, f := range floors {
		for _, s := range f.Shops {
			if _, err := l.v.AddShop(f.Level, s.Name, r2.Vec{X: s.X, Y: s.Y}); err != nil {
				l.warn(f.Level, "shop "+s.Name, err)
			}
		}
		l.corridors(f)
		for _, p := range f.Connections {
			if err := l.v.Connect(f.Level, p.From, p.To); err != nil {
				l.warn(f.Level, p.From+" -> "+p.To, err)
			}
		}
	}

	return l.v, l.warnings, nil
}

func (l *loader) corridors(f FloorDoc) {
	for _, c := range f.Corridors {
		var ids []string
		for _, n := range c.Nodes {
			if _, err := l.v.AddWaypoint(f.Level, n.ID, r2.Vec{X: n.X, Y: n.Y}); err != nil {
				l.warn(f.Level, "waypoint "+n.ID, err)
				continue
			}
			ids = append(ids, n.ID)
		}
		if _, err := l.v.AddSegment(f.Level, c.ID, ids); err != nil {
			l.warn(f.Level, "corridor "+c.ID, err)
		}
	}
	for _, p := range f.CorridorConnections {
		if err := l.v.LinkWaypoints(f.Level, p.From, p.To); err != nil {
			l.warn(f.Level, p.From+" -> "+p.To, err)
		}
	}
}

func (l *loader) warn(floor int, subject string, err error) {
	w := Warning{Floor: floor, Subject: subject, Reason: err.Error()}
	l.warnings = append(l.warnings, w)
	l.log.Warn("skipping venue entry",
		slog.Int("floor", floor),
		slog.String("subject", subject),
		slog.String("reason", w.Reason),
	)
}

func connectorSpec(c ConnectorDoc) (venue.ConnectorSpec, error) {
	kind, err := venue.ParseConnectorKind(c.Type)
	if err != nil {
		return venue.ConnectorSpec{}, fmt.Errorf("%w: connector %s: %w", ErrInvalid, c.Name, err)
	}
	dir, err := venue.ParseDirection(c.Direction)
	if err != nil {
		return venue.ConnectorSpec{}, fmt.Errorf("%w: connector %s: %w", ErrInvalid, c.Name, err)
	}
	accessible := true
	if c.Accessible != nil {
		accessible = *c.Accessible
	}

	return venue.ConnectorSpec{
		Name:       c.Name,
		Kind:       kind,
		Accessible: accessible,
		Direction:  dir,
		Pos:        r2.Vec{X: c.X, Y: c.Y},
	}, nil
}
