// SPDX-License-Identifier: MIT
//
// File: document.go
// Role: on-disk shape of a venue description.
//
// The same structs decode YAML and JSON (JSON is read through the YAML decoder).

package venuefile

// Document is a complete venue description.
type Document struct {
	Connectors []ConnectorDoc `yaml:"connectors"`
	Floors     []FloorDoc     `yaml:"floors"`
}

// ConnectorDoc declares a vertical connector. Missing fields default to an
// accessible two-way elevator at the origin.
type ConnectorDoc struct {
	Name       string  `yaml:"name"`
	Type       string  `yaml:"type"`
	Accessible *bool   `yaml:"accessible"`
	Direction  string  `yaml:"direction"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
}

// FloorDoc declares one floor. A floor with corridors routes through them;
// otherwise its connections are used.
type FloorDoc struct {
	Level               int           `yaml:"level"`
	Connectors          []string      `yaml:"connectors"`
	Shops               []ShopDoc     `yaml:"shops"`
	Corridors           []CorridorDoc `yaml:"corridors"`
	CorridorConnections []PairDoc     `yaml:"corridor_connections"`
	Connections         []PairDoc     `yaml:"connections"`
}

// ShopDoc declares a shop.
type ShopDoc struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// CorridorDoc is a named run of waypoints; consecutive nodes are linked.
type CorridorDoc struct {
	ID    string    `yaml:"id"`
	Nodes []NodeDoc `yaml:"nodes"`
}

// NodeDoc declares a corridor waypoint.
type NodeDoc struct {
	ID string  `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

// PairDoc references two entities of the same floor by name or id.
type PairDoc struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}
